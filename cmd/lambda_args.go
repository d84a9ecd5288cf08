package cmd

import (
	"github.com/isometry/image-moderation-app/internal/config"
)

var lambdaEnvMapString = map[*string]boundEnvVar[string]{
	&config.Lambda.PayloadType: {
		Name:        "lambda-payload-type",
		Description: "The payload type to expect when running in Lambda mode. Supported values are 'api-gateway-v1', 'api-gateway-v2' and 'lambda-url'",
	},
}

var lambdaEnvMapInt64 = map[*int64]boundEnvVar[int64]{
	&config.Objects.MaxSize: {
		Name:        "objects-max-size",
		Description: "The largest stored object, in bytes, sent for moderation in event mode. Zero disables the check",
	},
}
