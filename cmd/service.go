package cmd

import (
	"net"
	"net/http"

	"github.com/isometry/image-moderation-app/internal/config"
	"github.com/spf13/cobra"
)

func cmdService() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "service",
		Aliases: []string{"s", "serve", "standalone", "server"},
		Short:   "Serve the moderation endpoint over plain HTTP",
		RunE:    runService,
	}

	bindEnvMap(cmd, svcEnvMapString)
	bindEnvMap(cmd, svcEnvMapDuration)

	return cmd
}

func runService(cmd *cobra.Command, _ []string) error {
	logger = logger.With("mode", config.ModeService)
	logger.Info("spawning...")

	if err := setup(cmd); err != nil {
		return err
	}

	logger.Debug("creating HTTP server...")
	h := http.NewServeMux()
	h.HandleFunc(config.Service.Path, moderationRuntime.ServeHTTP)

	s := &http.Server{
		Handler:      h,
		Addr:         net.JoinHostPort(config.Service.Addr, config.Service.Port),
		WriteTimeout: config.Service.Timeout,
		ReadTimeout:  config.Service.Timeout,
		IdleTimeout:  config.Service.Timeout,
	}

	logger.Info("serving...", "address", s.Addr, "path", config.Service.Path, "timeout", config.Service.Timeout.String())
	return s.ListenAndServe()
}
