package cmd

import (
	"strconv"

	"github.com/isometry/image-moderation-app/internal/config"
	awsctl "github.com/isometry/image-moderation-app/internal/controllers/aws"
	"github.com/isometry/image-moderation-app/internal/handler"
	"github.com/isometry/image-moderation-app/internal/helpers"
	"github.com/isometry/image-moderation-app/internal/runtime"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	moderationRuntime *runtime.Runtime
)

type parameterGetter func(key string, encrypted bool) (*string, error)

// setup builds the AWS clients once for the execution context and wires them into the runtime.
func setup(cmd *cobra.Command) error {
	logger.Debug("creating AWS controller...")
	ctl, err := awsctl.NewController(
		awsctl.WithContext(cmd.Context()),
		awsctl.WithLogger(logger.With("component", "aws-controller")))
	if err != nil {
		return errors.Wrap(err, "failed to create AWS controller")
	}

	minConfidence, err := resolveMinConfidence(config.Moderation.MinConfidence, config.Moderation.MinConfidenceSSMParameter, ctl.GetParameter)
	if err != nil {
		return err
	}

	logger.Debug("creating moderation handler...", "minConfidence", minConfidence)
	hdl := handler.NewHandler(
		handler.WithLogger(logger.With("component", "moderation-handler")),
		handler.WithModerator(ctl),
		handler.WithObjectModerator(ctl),
		handler.WithMinConfidence(float32(minConfidence)),
		handler.WithMaxObjectSize(config.Objects.MaxSize))

	logger.Debug("creating runtime...")
	moderationRuntime = runtime.NewRuntime(hdl,
		runtime.WithPayloadType(config.Lambda.PayloadType),
		runtime.WithLogger(logger.With("component", "runtime")))
	return nil
}

// resolveMinConfidence returns the configured threshold, replaced by the SSM parameter value when key is set.
func resolveMinConfidence(configured float64, key string, get parameterGetter) (float64, error) {
	if key == "" {
		return configured, nil
	}
	value, err := get(key, true)
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch minimum confidence")
	}
	parsed, err := strconv.ParseFloat(helpers.String(value), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid minimum confidence in %s", key)
	}
	if parsed <= 0 || parsed > 100 {
		return 0, errors.Errorf("minimum confidence %v in %s is out of range (0, 100]", parsed, key)
	}
	return parsed, nil
}
