// Package models provides the core data structures exchanged between the runtimes and the moderation handler.
package models

// Request represents an inbound gateway request, reduced to the fields the handler reads.
type Request struct {
	HTTPMethod string
	Body       string
	// IsBase64Encoded is set by the gateway when it encoded the raw body on the way in.
	IsBase64Encoded bool
	Headers         map[string]string
}

// Response defines the structure for an HTTP response containing a body, headers, and a status code.
type Response struct {
	Body       string
	Headers    map[string]string
	StatusCode int
}
