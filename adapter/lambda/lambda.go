package lambda

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/gatekit/gatekit/core/request"
	"github.com/gatekit/gatekit/core/router"
)

// HandlerFunc is the Lambda entrypoint signature for API Gateway proxy
// integration.
type HandlerFunc func(ctx context.Context, evt events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// New returns the Lambda handler function for the compiled API.
func New(api *router.API) HandlerFunc {
	return func(ctx context.Context, evt events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		req, err := translate(evt)
		if err != nil {
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusBadRequest,
				Headers:    map[string]string{request.HeaderContentType: request.MediaTypeText},
				Body:       "Bad Request",
			}, nil
		}

		resp, err := api.Handle(ctx, req)
		if err != nil || resp == nil {
			// Only a failing filter outside the error-mapping filter lands here.
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusInternalServerError,
				Headers:    map[string]string{request.HeaderContentType: request.MediaTypeText},
				Body:       "Internal Server Error",
			}, nil
		}

		return writeResponse(resp), nil
	}
}

// Start runs the Lambda runtime loop with the compiled API. It never
// returns.
func Start(api *router.API) {
	awslambda.Start(New(api))
}

// translate converts an API Gateway event into the canonical request value.
func translate(evt events.APIGatewayProxyRequest) (*request.Request, error) {
	opts := []request.Option{
		request.WithHeaders(request.Headers(evt.Headers)),
		request.WithQuery(request.Params(evt.QueryStringParameters)),
	}

	if evt.RequestContext.Stage != "" {
		opts = append(opts, request.WithEnv(request.EnvStage, evt.RequestContext.Stage))
	}
	if evt.RequestContext.RequestID != "" {
		opts = append(opts, request.WithEnv(request.EnvRequestID, evt.RequestContext.RequestID))
	}
	for k, v := range evt.StageVariables {
		opts = append(opts, request.WithEnv(k, v))
	}

	if evt.Body != "" {
		if evt.IsBase64Encoded {
			raw, err := base64.StdEncoding.DecodeString(evt.Body)
			if err != nil {
				return nil, fmt.Errorf("decode event body: %w", err)
			}
			opts = append(opts, request.WithBody(raw))
		} else {
			opts = append(opts, request.WithBody(evt.Body))
		}
	}

	return request.New(evt.HTTPMethod, evt.Path, opts...), nil
}

// writeResponse converts a pipeline response into the API Gateway shape.
// Base64 bodies keep their encoding; the flag tells the gateway to decode.
func writeResponse(resp *request.Response) events.APIGatewayProxyResponse {
	out := events.APIGatewayProxyResponse{
		StatusCode:      resp.Status,
		IsBase64Encoded: resp.Base64Encoded,
	}
	if len(resp.Headers) > 0 {
		out.Headers = map[string]string(resp.Headers.Clone())
	}

	switch b := resp.Body.(type) {
	case nil:
	case string:
		out.Body = b
	case []byte:
		// The encoding filter normally converts raw bytes to base64; cover
		// pipelines assembled without it.
		out.Body = base64.StdEncoding.EncodeToString(b)
		out.IsBase64Encoded = true
	}

	return out
}
