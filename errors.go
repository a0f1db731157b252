package ink

import "strconv"

// ConfigError reports a configuration field that failed validation.
type ConfigError struct {
	Field string
	Value float64
}

func (e *ConfigError) Error() string {
	return "ink: config field " + e.Field + " must be non-negative, got " +
		strconv.FormatFloat(e.Value, 'g', -1, 64)
}
