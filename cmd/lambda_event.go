package cmd

import (
	"github.com/spf13/cobra"
)

func cmdLambdaEvent() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Handle S3 Object Created events delivered by EventBridge",
		RunE:  runLambdaEvent,
	}

	return cmd
}
