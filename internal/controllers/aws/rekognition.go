package aws

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/isometry/image-moderation-app/internal/helpers"
	"github.com/isometry/image-moderation-app/internal/models"
	"github.com/isometry/image-moderation-app/internal/moderation"
	"github.com/pkg/errors"
)

var (
	_ moderation.Moderator       = (*Controller)(nil)
	_ moderation.ObjectModerator = (*Controller)(nil)
)

// DetectModerationLabels sends the raw image bytes to Rekognition and returns the labels found at or above minConfidence.
func (a *Controller) DetectModerationLabels(ctx context.Context, image []byte, minConfidence float32) ([]models.ModerationLabel, error) {
	return a.detect(ctx, &types.Image{Bytes: image}, minConfidence)
}

// DetectObjectModerationLabels lets Rekognition read the image straight from S3.
func (a *Controller) DetectObjectModerationLabels(ctx context.Context, bucket, key string, minConfidence float32) ([]models.ModerationLabel, error) {
	return a.detect(ctx, &types.Image{S3Object: &types.S3Object{
		Bucket: aws.String(bucket),
		Name:   aws.String(key),
	}}, minConfidence)
}

func (a *Controller) detect(ctx context.Context, image *types.Image, minConfidence float32) ([]models.ModerationLabel, error) {
	out, err := a.rekognitionClient.DetectModerationLabels(ctx, &rekognition.DetectModerationLabelsInput{
		Image:         image,
		MinConfidence: aws.Float32(minConfidence),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to detect moderation labels")
	}
	if out == nil {
		return nil, errors.New("empty moderation response")
	}

	helpers.OnceAMinute.Do(func() {
		a.logger.Info("moderation model", slog.String("version", aws.ToString(out.ModerationModelVersion)))
	})

	return toModerationLabels(out.ModerationLabels), nil
}

// toModerationLabels copies the service labels one to one, keeping their order.
func toModerationLabels(in []types.ModerationLabel) []models.ModerationLabel {
	labels := make([]models.ModerationLabel, 0, len(in))
	for _, l := range in {
		labels = append(labels, models.ModerationLabel{
			Confidence:    aws.ToFloat32(l.Confidence),
			Name:          aws.ToString(l.Name),
			ParentName:    aws.ToString(l.ParentName),
			TaxonomyLevel: aws.ToInt32(l.TaxonomyLevel),
		})
	}
	return labels
}
