package cmd

import (
	"github.com/spf13/cobra"
)

func cmdLambdaHTTP() *cobra.Command {
	// cmd is the command for running the lambda-http mode.
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Handle API Gateway or function URL requests",
		RunE:  runLambdaHTTP,
	}

	return cmd
}
