// Package handler translates inbound gateway requests into moderation calls and moderation results into responses.
package handler

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aws/smithy-go"
	"github.com/isometry/image-moderation-app/internal/helpers"
	"github.com/isometry/image-moderation-app/internal/models"
	"github.com/isometry/image-moderation-app/internal/moderation"
	"github.com/isometry/image-moderation-app/internal/validation"
)

// DefaultMaxObjectSize is the largest stored object handed to the moderation service.
const DefaultMaxObjectSize int64 = 15 << 20

// Option is a function that configures a Handler.
type Option func(*Handler)

// Handler is the moderation request adapter.
type Handler struct {
	logger          *slog.Logger
	moderator       moderation.Moderator
	objectModerator moderation.ObjectModerator
	minConfidence   float32
	maxObjectSize   int64
}

// NewHandler creates a Handler. A moderator must be supplied for POST requests to succeed.
func NewHandler(options ...Option) *Handler {
	_inst := &Handler{
		logger:        helpers.NewNoopLogger(),
		minConfidence: moderation.DefaultMinConfidence,
		maxObjectSize: DefaultMaxObjectSize,
	}
	for _, opt := range options {
		opt(_inst)
	}
	return _inst
}

// MinConfidence returns the threshold passed to the moderation service.
func (h *Handler) MinConfidence() float32 {
	return h.minConfidence
}

// Handle produces exactly one response for req. Every failure is mapped onto the response;
// nothing is returned to the caller as an error.
func (h *Handler) Handle(ctx context.Context, req models.Request) models.Response {
	logger := h.logger.With(slog.String("method", req.HTTPMethod))

	if req.HTTPMethod == http.MethodOptions {
		logger.Debug("handling pre-flight request")
		return optionsResponse()
	}

	result := h.moderate(ctx, logger, req)
	logResult(logger, result)
	return result.Response()
}

func (h *Handler) moderate(ctx context.Context, logger *slog.Logger, req models.Request) Result {
	if req.HTTPMethod == "" {
		return Result{Outcome: OutcomeServiceFailure, Err: &MissingFieldError{Field: "httpMethod"}}
	}
	if req.Body == "" {
		return Result{Outcome: OutcomeServiceFailure, Err: &MissingFieldError{Field: "body"}}
	}

	body := req.Body
	if req.IsBase64Encoded {
		// the gateway wrapped the text body in its own base64 layer
		raw, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return Result{Outcome: OutcomeInvalidInput, Err: &validation.InvalidBase64Error{Cause: err}}
		}
		body = string(raw)
	}

	image, err := validation.DecodeImage(body)
	if err != nil {
		return Result{Outcome: OutcomeInvalidInput, Err: err}
	}

	if h.moderator == nil {
		return Result{Outcome: OutcomeServiceFailure, Err: &NoModeratorError{}}
	}

	logger.Info("calling moderation service...", slog.Int("bytes", len(image)), slog.Any("minConfidence", h.minConfidence))
	labels, err := h.moderator.DetectModerationLabels(ctx, image, h.minConfidence)
	if err != nil {
		return Result{Outcome: OutcomeServiceFailure, Err: err}
	}
	logger.Info("moderation labels found", slog.Int("count", len(labels)))
	return Result{Outcome: OutcomeSuccess, Labels: labels}
}

// HandleObject moderates an image stored in a bucket. Responses follow the same mapping as Handle.
func (h *Handler) HandleObject(ctx context.Context, bucket, key string) models.Response {
	logger := h.logger.With(slog.String("bucket", bucket), slog.String("key", key))
	result := h.moderateObject(ctx, logger, bucket, key)
	logResult(logger, result)
	return result.Response()
}

func (h *Handler) moderateObject(ctx context.Context, logger *slog.Logger, bucket, key string) Result {
	if bucket == "" {
		return Result{Outcome: OutcomeServiceFailure, Err: &MissingFieldError{Field: "bucket"}}
	}
	if key == "" {
		return Result{Outcome: OutcomeServiceFailure, Err: &MissingFieldError{Field: "key"}}
	}
	if h.objectModerator == nil {
		return Result{Outcome: OutcomeServiceFailure, Err: &NoModeratorError{}}
	}

	contentType, size, err := h.objectModerator.ObjectMetadata(ctx, bucket, key)
	if err != nil {
		return Result{Outcome: OutcomeServiceFailure, Err: err}
	}
	if err = validation.ValidateObject(contentType, size, h.maxObjectSize); err != nil {
		return Result{Outcome: OutcomeInvalidInput, Err: err, Message: err.Error()}
	}

	logger.Info("calling moderation service...", slog.Int64("bytes", size), slog.Any("minConfidence", h.minConfidence))
	labels, err := h.objectModerator.DetectObjectModerationLabels(ctx, bucket, key, h.minConfidence)
	if err != nil {
		return Result{Outcome: OutcomeServiceFailure, Err: err}
	}
	logger.Info("moderation labels found", slog.Int("count", len(labels)))
	return Result{Outcome: OutcomeSuccess, Labels: labels}
}

func logResult(logger *slog.Logger, result Result) {
	if result.Err == nil {
		return
	}
	attrs := []any{slog.String("outcome", result.Outcome.String()), slog.Any("error", result.Err)}
	var apiErr smithy.APIError
	if errors.As(result.Err, &apiErr) {
		attrs = append(attrs, slog.String("code", apiErr.ErrorCode()), slog.String("fault", apiErr.ErrorFault().String()))
	}
	switch result.Outcome {
	case OutcomeInvalidInput:
		logger.Warn("rejected request", attrs...)
	default:
		logger.Error("moderation failed", attrs...)
	}
}
