package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals() {
	Global = global{}
	Moderation = moderation{}
	Objects = objects{}
	Service = service{}
	Lambda = lambda{}
}

func TestSetDefaults(t *testing.T) {
	resetGlobals()
	t.Cleanup(resetGlobals)

	require.NoError(t, SetDefaults())

	assert.Equal(t, ModeLambdaHTTP, Global.Mode)
	assert.Equal(t, 1, Global.Logging.Verbosity)
	assert.Equal(t, 90.0, Moderation.MinConfidence)
	assert.Empty(t, Moderation.MinConfidenceSSMParameter)
	assert.Equal(t, int64(15<<20), Objects.MaxSize)
	assert.Equal(t, "/", Service.Path)
	assert.Equal(t, "8080", Service.Port)
	assert.Equal(t, 5*time.Second, Service.Timeout)
	assert.Equal(t, "api-gateway-v1", Lambda.PayloadType)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(valid, []byte(`
global:
  mode: service
  logging:
    verbosity: 2
moderation:
  minConfidence: 75.5
service:
  port: "9090"
  timeout: 10s
lambda:
  payloadType: lambda-url
`), 0o600))
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("global: ["), 0o600))

	testCases := []struct {
		Name        string
		Path        string
		ExpectError bool
		Check       func(t *testing.T)
	}{
		{
			Name: "empty_path",
			Path: "",
			Check: func(t *testing.T) {
				assert.Equal(t, ModeLambdaHTTP, Global.Mode)
			},
		},
		{
			Name: "missing_file",
			Path: filepath.Join(dir, "missing.yaml"),
			Check: func(t *testing.T) {
				assert.Equal(t, 90.0, Moderation.MinConfidence)
			},
		},
		{
			Name:        "directory",
			Path:        dir,
			ExpectError: true,
		},
		{
			Name:        "invalid_yaml",
			Path:        broken,
			ExpectError: true,
		},
		{
			Name: "valid_file",
			Path: valid,
			Check: func(t *testing.T) {
				assert.Equal(t, ModeService, Global.Mode)
				assert.Equal(t, 2, Global.Logging.Verbosity)
				assert.Equal(t, 75.5, Moderation.MinConfidence)
				assert.Equal(t, "9090", Service.Port)
				assert.Equal(t, 10*time.Second, Service.Timeout)
				assert.Equal(t, "/", Service.Path)
				assert.Equal(t, int64(15<<20), Objects.MaxSize)
				assert.Equal(t, "lambda-url", Lambda.PayloadType)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			resetGlobals()
			t.Cleanup(resetGlobals)

			err := LoadFromFile(tc.Path)
			if tc.ExpectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, SetDefaults())
			tc.Check(t)
		})
	}
}
