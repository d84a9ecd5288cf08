// Package cmd provides the entrypoint for the image-moderation-app cli.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/isometry/image-moderation-app/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFilePath string
	logger         *slog.Logger
)

type boundEnvVar[T argType] struct {
	Name, Description string
	Env, Short        *string
	Hidden            bool
}

// New returns the root command for the image-moderation-app.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image-moderation-app",
		Short: "Relays base64-encoded images to Amazon Rekognition and returns the moderation labels",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			config.Global.Mode = strings.TrimSpace(config.Global.Mode)
			logger = newLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch config.Global.Mode {
			case config.ModeService:
				return runService(cmd, args)
			case config.ModeLambdaHTTP:
				return chainCommands(cmd, args, setupLambda, runLambdaHTTP)
			case config.ModeLambdaEvent:
				return chainCommands(cmd, args, setupLambda, runLambdaEvent)
			default:
				return fmt.Errorf("invalid mode: %s", config.Global.Mode)
			}
		},
		SilenceUsage: true,
	}

	// Root command flags
	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "config.yaml", "path to the configuration file")

	// Configuration loading & defaults
	if err := errors.Join(
		config.LoadFromFile(configFilePath),
		config.SetDefaults(),
	); err != nil {
		panic(err)
	}

	// Dynamic flags
	setupDynamicFlags(cmd)

	// Subcommands
	cmd.AddCommand(
		cmdLambda(),
		cmdService(),
	)

	return cmd
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: config.Global.Logging.CallerTrace,
		Level:     slog.LevelWarn - slog.Level(config.Global.Logging.Verbosity*4),
	})).With("mode", config.Global.Mode)
}

func setupDynamicFlags(cmd *cobra.Command) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(replacer)

	bindEnvMap(cmd, envMapString)
	bindEnvMap(cmd, envMapBool)
	bindEnvMap(cmd, envMapCount)
	bindEnvMap(cmd, envMapFloat)
}

func chainCommands(cmd *cobra.Command, args []string, fns ...func(*cobra.Command, []string) error) error {
	for _, fn := range fns {
		if err := fn(cmd, args); err != nil {
			return err
		}
	}
	return nil
}
