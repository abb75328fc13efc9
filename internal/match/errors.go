package match

import (
	"errors"
	"fmt"
)

// ConfigurationError reports an unusable venue time-zone identifier.
// It is fatal for the affected booking; the resolver never silently
// substitutes UTC, since that would corrupt every derived instant.
type ConfigurationError struct {
	TimeZone string
	Err      error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unknown venue time zone %q: %v", e.TimeZone, e.Err)
	}
	return fmt.Sprintf("unknown venue time zone %q", e.TimeZone)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// AsConfigurationError attempts to unwrap an error into a ConfigurationError.
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr, true
	}
	return nil, false
}

// ValidationError reports a malformed per-record field such as the
// wall-clock time. It rejects the single record, never the batch.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr, true
	}
	return nil, false
}
