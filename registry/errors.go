package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownComponent  = errors.New("unknown component")
	ErrAlreadyRegistered = errors.New("component already registered")
	ErrMissingID         = errors.New("component has no id")
)

// ConfigurationError reports a request for a component that is not
// registered. It matches ErrUnknownComponent with errors.Is.
type ConfigurationError struct {
	Component   string
	Suggestions []string
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("%s %q", ErrUnknownComponent, e.Component)
	if len(e.Suggestions) == 0 {
		return msg
	}

	quoted := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		quoted[i] = fmt.Sprintf("%q", s)
	}

	return msg + " (did you mean " + strings.Join(quoted, ", ") + "?)"
}

func (e *ConfigurationError) Unwrap() error {
	return ErrUnknownComponent
}
