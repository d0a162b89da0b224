package transport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// LambdaHandler answers Lambda Function URL requests. Each POST body is a
// single JSON-RPC message; notifications are acknowledged with 202.
type LambdaHandler func(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error)

// NewLambdaHandler creates a Lambda Function URL handler for srv.
func NewLambdaHandler(srv *mcpserver.MCPServer) LambdaHandler {
	return func(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
		method := req.RequestContext.HTTP.Method
		if method == http.MethodGet && req.RawPath == "/healthz" {
			return textResponse(http.StatusOK, "ok"), nil
		}
		if method != http.MethodPost {
			return textResponse(http.StatusMethodNotAllowed, "method not allowed"), nil
		}

		body := []byte(req.Body)
		if req.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(req.Body)
			if err != nil {
				return textResponse(http.StatusBadRequest, "invalid base64 body"), nil
			}
			body = decoded
		}
		if len(body) == 0 {
			return textResponse(http.StatusBadRequest, "empty request body"), nil
		}

		resp := srv.HandleMessage(ctx, json.RawMessage(body))
		if resp == nil {
			return events.LambdaFunctionURLResponse{StatusCode: http.StatusAccepted}, nil
		}
		data, err := json.Marshal(resp)
		if err != nil {
			logrus.WithError(err).Error("Failed to encode JSON-RPC response")
			return textResponse(http.StatusInternalServerError, "failed to encode response"), nil
		}
		return events.LambdaFunctionURLResponse{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       string(data),
		}, nil
	}
}

func textResponse(status int, body string) events.LambdaFunctionURLResponse {
	return events.LambdaFunctionURLResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:       body,
	}
}
