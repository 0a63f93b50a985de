package filter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gatekit/gatekit/core/handler"
	"github.com/gatekit/gatekit/core/httperr"
	"github.com/gatekit/gatekit/core/request"
)

// Encoding returns the content-encoding filter function. It establishes
// JSON as the default response content type and encodes the response body
// according to its value kind:
//
// JSON content type: an absent body stays absent; a string passes through
// unchanged (assumed already JSON); raw bytes are base64-encoded with the
// binary flag set; any other value is serialized to a JSON string.
//
// Any other content type: absent and string bodies pass through, raw bytes
// are base64-encoded, and any other value kind is a serialization error,
// mapped to a 500 by the error-mapping filter wrapping this one.
func Encoding() handler.Filter {
	return encodeResponse
}

func encodeResponse(ctx context.Context, req *request.Request, next handler.Handler) (*request.Response, error) {
	// Handlers that do not set a content type produce JSON. The default
	// travels on the request so handlers can still override it.
	req = req.WithDefaultResponseHeader(request.HeaderContentType, request.MediaTypeJSON)

	resp, err := next(ctx, req)
	if err != nil {
		return nil, err
	}

	contentType := resp.Headers.Get(request.HeaderContentType)
	if contentType == "" {
		contentType = request.MediaTypeJSON
		resp = resp.WithHeader(request.HeaderContentType, contentType)
	}

	switch body := resp.Body.(type) {
	case nil:
		return resp, nil
	case string:
		return resp, nil
	case []byte:
		return resp.WithEncodedBody(base64.StdEncoding.EncodeToString(body), true), nil
	default:
		if mediaType(contentType) != request.MediaTypeJSON {
			return nil, fmt.Errorf("%w: body of type %T requires a JSON content type, got %q",
				httperr.ErrSerialization, body, contentType)
		}
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", httperr.ErrSerialization, err)
		}
		return resp.WithBody(string(encoded)), nil
	}
}

// mediaType strips parameters such as charset from a content-type value.
func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(mt)
}
