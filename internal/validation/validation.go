// Package validation provides the checks applied to inbound images before they reach the moderation service.
package validation

import (
	"encoding/base64"
	"fmt"
	"slices"
)

// SupportedContentTypes lists the stored object formats the moderation service accepts.
var SupportedContentTypes = []string{"image/jpeg", "image/png"}

// InvalidBase64Error is returned when the request body is not standard base64.
type InvalidBase64Error struct {
	Cause error
}

func (e *InvalidBase64Error) Error() string {
	return fmt.Sprintf("invalid base64 payload: %v", e.Cause)
}

func (e *InvalidBase64Error) Unwrap() error {
	return e.Cause
}

// UnsupportedObjectError is returned when a stored object cannot be handed to the moderation service.
type UnsupportedObjectError struct {
	Reason string
}

func (e *UnsupportedObjectError) Error() string {
	return e.Reason
}

// DecodeImage decodes a standard base64 string into the raw image bytes.
// The decoded bytes are not checked to be a well-formed image.
func DecodeImage(body string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, &InvalidBase64Error{Cause: err}
	}
	return data, nil
}

// ValidateObject checks the metadata of a stored object against the supported formats and the size limit.
// A maxSize of zero or less disables the size check.
func ValidateObject(contentType string, size, maxSize int64) error {
	if !slices.Contains(SupportedContentTypes, contentType) {
		return &UnsupportedObjectError{Reason: fmt.Sprintf("unsupported content type: %q", contentType)}
	}
	if maxSize > 0 && size > maxSize {
		return &UnsupportedObjectError{Reason: fmt.Sprintf("object size %d exceeds limit of %d bytes", size, maxSize)}
	}
	return nil
}
