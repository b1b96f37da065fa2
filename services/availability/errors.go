package availability

import "fmt"

// ConfigurationError marks structurally invalid schedule data (malformed
// weekly rules, unknown timezone, bad policy). It is fatal for the request:
// corrupt configuration is surfaced to the caller, never silently skipped.
type ConfigurationError struct {
	Code    string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConfigurationError(msg string) error {
	return &ConfigurationError{
		Code:    "configurationError",
		Message: msg,
	}
}
