// Package main provides the entrypoint for image-moderation-app.
package main

import (
	"os"

	"github.com/isometry/image-moderation-app/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
