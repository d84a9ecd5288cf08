package cmd

import (
	"testing"
	"time"

	"github.com/isometry/image-moderation-app/internal/helpers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindEnvMap(t *testing.T) {
	t.Cleanup(viper.Reset)

	var (
		payloadType = "api-gateway-v1"
		threshold   = 90.0
		maxSize     = int64(1024)
		timeout     = 5 * time.Second
	)
	t.Setenv("TEST_PAYLOAD_TYPE", "lambda-url")
	t.Setenv("TEST_THRESHOLD", "80.5")
	t.Setenv("TEST_TIMEOUT", "30s")

	cmd := &cobra.Command{Use: "test"}
	bindEnvMap(cmd, map[*string]boundEnvVar[string]{
		&payloadType: {Name: "test-payload-type", Description: "payload"},
	})
	bindEnvMap(cmd, map[*float64]boundEnvVar[float64]{
		&threshold: {Name: "threshold", Env: helpers.Ptr("TEST_THRESHOLD")},
	})
	bindEnvMap(cmd, map[*int64]boundEnvVar[int64]{
		&maxSize: {Name: "test-max-size"},
	})
	bindEnvMap(cmd, map[*time.Duration]boundEnvVar[time.Duration]{
		&timeout: {Name: "test-timeout", Short: helpers.Ptr("t")},
	})

	assert.Equal(t, "lambda-url", payloadType)
	assert.Equal(t, 80.5, threshold)
	assert.Equal(t, int64(1024), maxSize)
	assert.Equal(t, 30*time.Second, timeout)

	flag := cmd.PersistentFlags().Lookup("test-payload-type")
	require.NotNil(t, flag)
	assert.Equal(t, "[TEST_PAYLOAD_TYPE] payload", flag.Usage)

	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--test-max-size", "2048", "-t", "1m"}))
	assert.Equal(t, int64(2048), maxSize)
	assert.Equal(t, time.Minute, timeout)
}

func TestResolveMinConfidence(t *testing.T) {
	testCases := []struct {
		Name        string
		Key         string
		Value       *string
		Expected    float64
		ExpectError bool
	}{
		{
			Name:     "no_parameter",
			Expected: 90,
		},
		{
			Name:     "parameter_override",
			Key:      "/moderation/min-confidence",
			Value:    helpers.Ptr("75"),
			Expected: 75,
		},
		{
			Name:        "parameter_not_a_number",
			Key:         "/moderation/min-confidence",
			Value:       helpers.Ptr("high"),
			ExpectError: true,
		},
		{
			Name:        "parameter_out_of_range",
			Key:         "/moderation/min-confidence",
			Value:       helpers.Ptr("120"),
			ExpectError: true,
		},
		{
			Name:        "parameter_missing",
			Key:         "/moderation/min-confidence",
			ExpectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			get := func(key string, _ bool) (*string, error) {
				assert.Equal(t, tc.Key, key)
				return tc.Value, nil
			}
			got, err := resolveMinConfidence(90, tc.Key, get)
			if tc.ExpectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}
