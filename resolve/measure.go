package resolve

// Measurement is the rendered size of a chart container. Zero fields are
// unknown.
type Measurement struct {
	Width      float64 `yaml:"width,omitempty"`
	Height     float64 `yaml:"height,omitempty"`
	FontSize   float64 `yaml:"fontSize,omitempty"`
	LineHeight float64 `yaml:"lineHeight,omitempty"`
}

// Measurer reports the size of the container a chart with the given id will
// be drawn into. The host environment provides it; resolution never reads
// the host directly.
type Measurer interface {
	Measure(id string) (Measurement, bool)
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(id string) (Measurement, bool)

func (f MeasureFunc) Measure(id string) (Measurement, bool) {
	return f(id)
}

// StaticMeasurer answers from a fixed table, falling back to Default for
// ids it does not list.
type StaticMeasurer struct {
	Default Measurement
	ByID    map[string]Measurement
}

func (s StaticMeasurer) Measure(id string) (Measurement, bool) {
	if m, ok := s.ByID[id]; ok {
		return m, true
	}

	return s.Default, s.Default != Measurement{}
}

type noMeasurer struct{}

func (noMeasurer) Measure(string) (Measurement, bool) {
	return Measurement{}, false
}
