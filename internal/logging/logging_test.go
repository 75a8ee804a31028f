package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != WarnLevel {
		t.Errorf("expected Level to be WarnLevel, got %v", cfg.Level)
	}
	if cfg.Output != os.Stderr {
		t.Errorf("expected Output to be os.Stderr")
	}
	if cfg.Pretty {
		t.Errorf("expected Pretty to be false")
	}
	if cfg.TimeFormat != time.RFC3339 {
		t.Errorf("expected TimeFormat to be RFC3339, got %s", cfg.TimeFormat)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"  debug  ", DebugLevel},
		{"info", InfoLevel},
		{"WARN", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"off", DisabledLevel},
		{"", WarnLevel},
		{"INVALID", WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: InfoLevel, Output: &buf})

	log.Debug().Msg("hidden")
	log.Info().Str("component", "bar-chart").Msg("resolved")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug message should be filtered, got %s", output)
	}
	if !strings.Contains(output, `"component":"bar-chart"`) {
		t.Errorf("expected structured field, got %s", output)
	}
	if !strings.Contains(output, `"time"`) {
		t.Errorf("expected timestamp, got %s", output)
	}
}

func TestInitReplacesLogger(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: DebugLevel, Output: &buf})
	t.Cleanup(func() { Logger = Nop() })

	Logger.Debug().Msg("from global")

	if !strings.Contains(buf.String(), "from global") {
		t.Errorf("expected global logger to write, got %s", buf.String())
	}
}

func TestPretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: InfoLevel, Output: &buf, Pretty: true})

	log.Info().Msg("pretty")

	if strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected console output, got %s", buf.String())
	}
}
