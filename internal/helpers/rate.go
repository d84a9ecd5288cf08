package helpers

import (
	"time"

	"golang.org/x/time/rate"
)

// OnceAMinute runs a function at most once per minute within an execution context.
var OnceAMinute = &rate.Sometimes{Interval: time.Minute}
