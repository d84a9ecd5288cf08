package runtime

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/isometry/image-moderation-app/internal/helpers"
	"github.com/isometry/image-moderation-app/internal/models"
	"github.com/pkg/errors"
)

// ObjectCreatedDetailType is the EventBridge detail-type emitted by S3 for new objects.
const ObjectCreatedDetailType = "Object Created"

// LambdaForEvent is the Lambda handler for the runtime in event mode. It moderates the
// object announced by an S3 "Object Created" EventBridge event.
func (r *Runtime) LambdaForEvent(ctx context.Context, event models.Event) (models.Response, error) {
	logger := r.logger.With(slog.String("eventId", event.ID), slog.String("detailType", event.DetailType))
	logger.Info("received EventBridge event")

	if event.DetailType != ObjectCreatedDetailType {
		logger.Warn("ignoring unsupported event type")
		return models.Response{}, errors.Errorf("unsupported event detail-type: %q", event.DetailType)
	}

	var detail models.ObjectCreatedDetail
	if err := json.Unmarshal(event.Detail, &detail); err != nil {
		logger.Warn("failed to decode event detail", slog.Any("error", err))
		return models.Response{}, errors.Wrap(err, "failed to decode event detail")
	}

	resp := r.Handler.HandleObject(ctx, detail.Bucket.Name, detail.Object.Key)
	logger.Info("handled event", slog.Int("status", resp.StatusCode), slog.String("body", helpers.Truncate(resp.Body, logBodyLimit)))
	return resp, nil
}
