package domain

import "fmt"

// ConfigurationError marks failures that make a run impossible: bad arguments,
// a non-existent scan root, unparseable configuration. It is the only error
// kind that aborts before scanning; everything else is captured as findings.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NewConfigurationError wraps err with a run-aborting configuration failure.
func NewConfigurationError(msg string, err error) *ConfigurationError {
	return &ConfigurationError{Msg: msg, Err: err}
}
