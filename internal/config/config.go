// Package config provides a centralized entrypoint for the application parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"go.yaml.in/yaml/v3"
)

// Runtime modes.
const (
	ModeService     = "service"
	ModeLambdaHTTP  = "lambda-http"
	ModeLambdaEvent = "lambda-event"
)

var (
	// Global is a struct that contains the global configuration.
	Global global
	// Moderation is a struct that contains the configuration of the moderation service calls.
	Moderation moderation
	// Objects is a struct that contains the configuration for stored object moderation.
	Objects objects
	// Service is a struct that contains the configuration for the service mode.
	Service service
	// Lambda is a struct that contains the configuration for the lambda mode.
	Lambda lambda
)

type global struct {
	// Mode is the runtime mode of the application.
	Mode string `yaml:"mode,omitempty" default:"lambda-http"`
	// Logging is a struct that contains the logging configuration.
	Logging struct {
		// Verbosity is the verbosity level of the application. It represents slog levels.
		Verbosity int `yaml:"verbosity,omitempty" default:"1"`
		// CallerTrace is a flag that enables the caller trace in the logger.
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
}

type moderation struct {
	// MinConfidence is the minimum confidence, in percent, a label needs to be returned.
	MinConfidence float64 `yaml:"minConfidence,omitempty" default:"90"`
	// MinConfidenceSSMParameter optionally names an SSM parameter overriding MinConfidence at startup.
	MinConfidenceSSMParameter string `yaml:"minConfidenceSSMParameter,omitempty"`
}

type objects struct {
	// MaxSize is the largest object, in bytes, sent for moderation. Zero disables the check.
	MaxSize int64 `yaml:"maxSize,omitempty" default:"15728640"`
}

type service struct {
	Path    string        `yaml:"path,omitempty" default:"/"`
	Addr    string        `yaml:"addr,omitempty"`
	Port    string        `yaml:"port,omitempty" default:"8080"`
	Timeout time.Duration `yaml:"timeout,omitempty" default:"5s"`
}

type lambda struct {
	PayloadType string `yaml:"payloadType,omitempty" default:"api-gateway-v1"`
}

// SetDefaults sets the default values for the configuration.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&Moderation),
		defaults.Set(&Objects),
		defaults.Set(&Service),
		defaults.Set(&Lambda),
	)
}

// LoadFromFile loads the configuration from a file.
func LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	type all struct {
		Global     global     `yaml:"global,omitempty"`
		Moderation moderation `yaml:"moderation,omitempty"`
		Objects    objects    `yaml:"objects,omitempty"`
		Service    service    `yaml:"service,omitempty"`
		Lambda     lambda     `yaml:"lambda,omitempty"`
	}
	var a all
	if err = yaml.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global = a.Global
	Moderation = a.Moderation
	Objects = a.Objects
	Service = a.Service
	Lambda = a.Lambda

	return nil
}
