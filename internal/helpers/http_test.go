package helpers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isometry/image-moderation-app/internal/helpers"
	"github.com/isometry/image-moderation-app/internal/models"
	"github.com/stretchr/testify/assert"
)

type testCase struct {
	Name     string
	Response models.Response
	Expected expectedResponse
}

type expectedResponse struct {
	StatusCode int
	Body       string
	Header     string
}

func TestRespondHTTP(t *testing.T) {
	testCases := []testCase{
		{
			Name: "with_valid_response",
			Response: models.Response{
				StatusCode: http.StatusOK,
				Body:       `[]`,
				Headers:    map[string]string{"Content-Type": "application/json"},
			},
			Expected: expectedResponse{
				StatusCode: http.StatusOK,
				Body:       `[]`,
				Header:     "application/json",
			},
		},
		{
			Name: "with_error_response",
			Response: models.Response{
				StatusCode: http.StatusBadRequest,
				Body:       `{"error":"Invalid Base64 format"}`,
				Headers:    map[string]string{"Content-Type": "application/json"},
			},
			Expected: expectedResponse{
				StatusCode: http.StatusBadRequest,
				Body:       `{"error":"Invalid Base64 format"}`,
				Header:     "application/json",
			},
		},
		{
			Name:     "with_empty_response",
			Response: models.Response{},
			Expected: expectedResponse{
				StatusCode: http.StatusOK,
				Body:       "",
				Header:     "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rw := httptest.NewRecorder()

			helpers.RespondHTTP(tc.Response, rw)

			assert.Equal(t, tc.Expected.StatusCode, rw.Code)
			assert.Equal(t, tc.Expected.Header, rw.Header().Get("Content-Type"))
			assert.Equal(t, tc.Expected.Body, rw.Body.String())
		})
	}
}
