package handler

import (
	"encoding/json"
	"net/http"

	"github.com/isometry/image-moderation-app/internal/models"
)

const (
	optionsAcknowledgement = "OPTIONS request handled"
	invalidBase64Message   = "Invalid Base64 format"
	internalErrorMessage   = "Internal server error"
)

// Outcome tags the result of a moderation request.
type Outcome int

const (
	// OutcomeSuccess means the moderation service returned labels.
	OutcomeSuccess Outcome = iota
	// OutcomeInvalidInput means the request was rejected before reaching the moderation service.
	OutcomeInvalidInput
	// OutcomeServiceFailure covers every other failure.
	OutcomeServiceFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalidInput:
		return "invalid-input"
	default:
		return "service-failure"
	}
}

// Result is the tagged outcome of a moderation request.
type Result struct {
	Outcome Outcome
	Labels  []models.ModerationLabel
	Err     error
	// Message overrides the client error text of an OutcomeInvalidInput result.
	Message string
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// CORSHeaders returns a fresh copy of the headers attached to every response.
func CORSHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Allow-Methods": "POST,OPTIONS",
		"Content-Type":                 "application/json",
	}
}

// Response maps the result onto the response envelope.
func (r Result) Response() models.Response {
	switch r.Outcome {
	case OutcomeSuccess:
		labels := r.Labels
		if labels == nil {
			labels = []models.ModerationLabel{}
		}
		body, err := json.Marshal(labels)
		if err != nil {
			return Result{Outcome: OutcomeServiceFailure, Err: err}.Response()
		}
		return newResponse(http.StatusOK, body)
	case OutcomeInvalidInput:
		msg := r.Message
		if msg == "" {
			msg = invalidBase64Message
		}
		return jsonResponse(http.StatusBadRequest, errorBody{Error: msg})
	default:
		details := "unknown error"
		if r.Err != nil {
			details = r.Err.Error()
		}
		return jsonResponse(http.StatusInternalServerError, errorBody{Error: internalErrorMessage, Details: details})
	}
}

func optionsResponse() models.Response {
	return jsonResponse(http.StatusOK, optionsAcknowledgement)
}

func jsonResponse(status int, v any) models.Response {
	// v is always a string or an errorBody here, both of which marshal without error.
	body, _ := json.Marshal(v)
	return newResponse(status, body)
}

func newResponse(status int, body []byte) models.Response {
	return models.Response{
		StatusCode: status,
		Headers:    CORSHeaders(),
		Body:       string(body),
	}
}
