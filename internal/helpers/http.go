package helpers

import (
	"net/http"

	"github.com/isometry/image-moderation-app/internal/models"
)

// RespondHTTP writes a handler response to rw. Headers are set before the status line is written.
func RespondHTTP(response models.Response, rw http.ResponseWriter) {
	for k, v := range response.Headers {
		rw.Header().Set(k, v)
	}
	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	rw.WriteHeader(statusCode)
	_, _ = rw.Write([]byte(response.Body))
}
