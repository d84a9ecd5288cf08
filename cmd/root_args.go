package cmd

import (
	"github.com/isometry/image-moderation-app/internal/config"
	"github.com/isometry/image-moderation-app/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.Global.Mode: {
		Name:        "mode",
		Description: "The application runtime mode. Possible values are 'lambda-http', 'lambda-event' and 'service'",
		Short:       helpers.Ptr("m"),
	},
	&config.Moderation.MinConfidenceSSMParameter: {
		Name:        "moderation-min-confidence-ssm-parameter",
		Description: "The SSM parameter holding the minimum label confidence. If not specified, the parameter store is not queried",
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
}

var envMapCount = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default InfoLevel)",
		Short:       helpers.Ptr("v"),
	},
}

var envMapFloat = map[*float64]boundEnvVar[float64]{
	&config.Moderation.MinConfidence: {
		Name:        "moderation-min-confidence",
		Description: "The minimum confidence, in percent, a moderation label needs to be returned",
		Env:         helpers.Ptr("MIN_CONFIDENCE"),
	},
}
