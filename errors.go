package codeshot

import (
	"errors"
	"fmt"
)

// ErrInvalidColor is returned by ParseHex for malformed color strings.
var ErrInvalidColor = errors.New("codeshot: invalid color")

// ConfigError reports a Config field that failed validation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("codeshot: invalid config %s: %s", e.Field, e.Reason)
}
