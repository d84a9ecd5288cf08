package handler

import "fmt"

// MissingFieldError is returned when a required request field is absent.
type MissingFieldError struct {
	Field string
}

func (m *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", m.Field)
}

// NoModeratorError is returned when the handler was built without a moderation backend for the requested operation.
type NoModeratorError struct{}

func (m *NoModeratorError) Error() string {
	return "no moderator configured"
}
