// Package runtime adapts the Lambda and standalone HTTP entrypoints onto the moderation handler.
package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/isometry/image-moderation-app/internal/handler"
	"github.com/isometry/image-moderation-app/internal/helpers"
	"github.com/isometry/image-moderation-app/internal/models"
	"github.com/pkg/errors"
)

// Supported Lambda payload types.
const (
	PayloadTypeAPIGatewayV1 = "api-gateway-v1"
	PayloadTypeAPIGatewayV2 = "api-gateway-v2"
	PayloadTypeLambdaURL    = "lambda-url"
)

const logBodyLimit = 512

type Option func(*Runtime)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithPayloadType selects the Lambda event shape HandleEvent expects.
func WithPayloadType(payloadType string) Option {
	return func(r *Runtime) {
		r.payloadType = payloadType
	}
}

type Runtime struct {
	*handler.Handler
	logger      *slog.Logger
	payloadType string
}

// NewRuntime creates a new runtime instance
func NewRuntime(handler *handler.Handler, opts ...Option) *Runtime {
	_inst := &Runtime{Handler: handler, payloadType: PayloadTypeAPIGatewayV1}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst
}

// HandleEvent is the Lambda handler for the runtime in HTTP mode.
// Only an unsupported payload type or an undecodable event is returned as an error.
func (r *Runtime) HandleEvent(ctx context.Context, payload json.RawMessage) (any, error) {
	r.logger.Info("received gateway request", slog.String("payloadType", r.payloadType))

	req, err := r.decodeRequest(payload)
	if err != nil {
		return nil, err
	}

	resp := r.Handler.Handle(ctx, req)
	r.logger.Info("handled event", slog.Int("status", resp.StatusCode), slog.String("body", helpers.Truncate(resp.Body, logBodyLimit)))

	return r.encodeResponse(resp)
}

func (r *Runtime) decodeRequest(payload json.RawMessage) (models.Request, error) {
	switch r.payloadType {
	case PayloadTypeAPIGatewayV1:
		var e events.APIGatewayProxyRequest
		if err := json.Unmarshal(payload, &e); err != nil {
			return models.Request{}, errors.Wrap(err, "failed to decode API Gateway v1 request")
		}
		return models.Request{HTTPMethod: e.HTTPMethod, Body: e.Body, IsBase64Encoded: e.IsBase64Encoded, Headers: lowerKeys(e.Headers)}, nil
	case PayloadTypeAPIGatewayV2:
		var e events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(payload, &e); err != nil {
			return models.Request{}, errors.Wrap(err, "failed to decode API Gateway v2 request")
		}
		return models.Request{HTTPMethod: e.RequestContext.HTTP.Method, Body: e.Body, IsBase64Encoded: e.IsBase64Encoded, Headers: lowerKeys(e.Headers)}, nil
	case PayloadTypeLambdaURL:
		var e events.LambdaFunctionURLRequest
		if err := json.Unmarshal(payload, &e); err != nil {
			return models.Request{}, errors.Wrap(err, "failed to decode Lambda function URL request")
		}
		return models.Request{HTTPMethod: e.RequestContext.HTTP.Method, Body: e.Body, IsBase64Encoded: e.IsBase64Encoded, Headers: lowerKeys(e.Headers)}, nil
	default:
		return models.Request{}, fmt.Errorf("unsupported lambda payload type: %s", r.payloadType)
	}
}

func (r *Runtime) encodeResponse(resp models.Response) (any, error) {
	switch r.payloadType {
	case PayloadTypeAPIGatewayV1:
		return events.APIGatewayProxyResponse{
			Body:       resp.Body,
			Headers:    resp.Headers,
			StatusCode: resp.StatusCode,
		}, nil
	case PayloadTypeAPIGatewayV2:
		return events.APIGatewayV2HTTPResponse{
			Body:       resp.Body,
			Headers:    resp.Headers,
			StatusCode: resp.StatusCode,
		}, nil
	case PayloadTypeLambdaURL:
		return events.LambdaFunctionURLResponse{
			Body:       resp.Body,
			Headers:    resp.Headers,
			StatusCode: resp.StatusCode,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported lambda payload type: %s", r.payloadType)
	}
}

// ServeHTTP is the HTTP handler for the runtime
func (r *Runtime) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	r.logger.Debug("received HTTP request...", slog.Any("requestor", req.RemoteAddr), slog.Any("method", req.Method), slog.Any("path", req.URL.Path))

	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.logger.Error("failed to read request body", slog.Any("error", err))
		helpers.RespondHTTP(handler.Result{Outcome: handler.OutcomeServiceFailure, Err: err}.Response(), resp)
		return
	}

	headers := make(map[string]string)
	for k, v := range req.Header {
		headers[strings.ToLower(k)] = v[0]
	}

	result := r.Handler.Handle(req.Context(), models.Request{
		HTTPMethod: req.Method,
		Body:       strings.TrimSpace(string(body)),
		Headers:    headers,
	})
	r.logger.Debug("handled request", slog.Int("status", result.StatusCode))
	helpers.RespondHTTP(result, resp)
}

func lowerKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(k)] = v
	}
	return out
}
