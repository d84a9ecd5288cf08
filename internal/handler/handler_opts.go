package handler

import (
	"log/slog"

	"github.com/isometry/image-moderation-app/internal/moderation"
)

// WithLogger sets the logger instance for the handler.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithModerator sets the moderation service used for inline images.
func WithModerator(m moderation.Moderator) Option {
	return func(h *Handler) {
		h.moderator = m
	}
}

// WithObjectModerator sets the moderation service used for stored objects.
func WithObjectModerator(m moderation.ObjectModerator) Option {
	return func(h *Handler) {
		h.objectModerator = m
	}
}

// WithMinConfidence overrides the minimum label confidence. Non-positive values are ignored.
func WithMinConfidence(minConfidence float32) Option {
	return func(h *Handler) {
		if minConfidence > 0 {
			h.minConfidence = minConfidence
		}
	}
}

// WithMaxObjectSize sets the stored object size limit. Zero disables the check.
func WithMaxObjectSize(size int64) Option {
	return func(h *Handler) {
		h.maxObjectSize = size
	}
}
