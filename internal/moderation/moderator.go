// Package moderation defines the contract of the external image moderation service.
package moderation

import (
	"context"

	"github.com/isometry/image-moderation-app/internal/models"
)

// DefaultMinConfidence is the minimum confidence, in percent, a label needs to be reported.
const DefaultMinConfidence float32 = 90

// Moderator defines the interface for image moderation services.
type Moderator interface {
	// DetectModerationLabels returns the labels found in image at or above minConfidence.
	DetectModerationLabels(ctx context.Context, image []byte, minConfidence float32) ([]models.ModerationLabel, error)
}

// ObjectModerator moderates images that are already stored in a bucket.
type ObjectModerator interface {
	// ObjectMetadata returns the content type and size of the stored object.
	ObjectMetadata(ctx context.Context, bucket, key string) (contentType string, size int64, err error)
	// DetectObjectModerationLabels behaves like Moderator.DetectModerationLabels for a stored object.
	DetectObjectModerationLabels(ctx context.Context, bucket, key string, minConfidence float32) ([]models.ModerationLabel, error)
}
