package tools

import "fmt"

// ValidationError reports malformed tool arguments. It is raised before any
// remote call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConfirmationRequiredError is returned by destructive tools called without
// an explicit confirm flag.
type ConfirmationRequiredError struct {
	Tool   string
	Target string
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("%s on %s requires confirm=true", e.Tool, e.Target)
}
