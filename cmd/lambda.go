package cmd

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func cmdLambda() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "lambda",
		Short:             "Run as an AWS Lambda function",
		PersistentPreRunE: setupLambda,
	}

	bindEnvMap(cmd, lambdaEnvMapString)
	bindEnvMap(cmd, lambdaEnvMapInt64)

	cmd.AddCommand(
		cmdLambdaHTTP(),
		cmdLambdaEvent(),
	)
	return cmd
}

func setupLambda(cmd *cobra.Command, args []string) error {
	cmd.Root().PersistentPreRun(cmd, args)
	if err := setup(cmd); err != nil {
		return errors.Wrap(err, "failed to setup lambda")
	}
	return nil
}

func runLambdaHTTP(cmd *cobra.Command, _ []string) error {
	logger.Info("lambda starting...", "handler", "http")
	lambda.StartWithOptions(moderationRuntime.HandleEvent,
		lambda.WithContext(cmd.Context()))
	return nil
}

func runLambdaEvent(cmd *cobra.Command, _ []string) error {
	logger.Info("lambda starting...", "handler", "event")
	lambda.StartWithOptions(moderationRuntime.LambdaForEvent,
		lambda.WithContext(cmd.Context()))
	return nil
}
