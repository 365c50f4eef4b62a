package config

import "errors"

// Validation errors returned when a merged configuration mapping does not
// satisfy the config type's schema.
var (
	// ErrMissingRequiredField indicates that one or more required fields are
	// absent after all sources were merged. The wrapped error names them.
	ErrMissingRequiredField = errors.New("missing required config field")
)
