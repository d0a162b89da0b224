package transport

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/google"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/metrics"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/tools"
)

const (
	listToolsMessage = `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
	getUserMessage   = `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"gw_get_user","arguments":{"email":"a@example.com"}}}`
	notification     = `{"jsonrpc":"2.0","method":"notifications/initialized"}`
)

func newServer(client *google.MockClient) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("test", "0.0.0", mcpserver.WithToolCapabilities(true))
	tools.NewDispatcher(client, false).Register(s)
	return s
}

func postRequest(body string) events.LambdaFunctionURLRequest {
	req := events.LambdaFunctionURLRequest{Body: body, RawPath: "/"}
	req.RequestContext.HTTP.Method = http.MethodPost
	return req
}

type rpcResponse struct {
	Result struct {
		Tools   []struct{ Name string } `json:"tools"`
		Content []struct{ Text string } `json:"content"`
		IsError bool                    `json:"isError"`
	} `json:"result"`
	Error *struct{ Code int } `json:"error"`
}

func TestLambdaToolsList(t *testing.T) {
	handler := NewLambdaHandler(newServer(&google.MockClient{}))

	resp, err := handler(context.Background(), postRequest(listToolsMessage))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	var decoded rpcResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &decoded))
	assert.Len(t, decoded.Result.Tools, 11)
}

func TestLambdaToolCall(t *testing.T) {
	client := &google.MockClient{}
	handler := NewLambdaHandler(newServer(client))

	resp, err := handler(context.Background(), postRequest(getUserMessage))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded rpcResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &decoded))
	require.Len(t, decoded.Result.Content, 1)
	assert.False(t, decoded.Result.IsError)
	assert.Contains(t, decoded.Result.Content[0].Text, "a@example.com")
	assert.Equal(t, 1, client.CallCount("GetUser"))
}

func TestLambdaBase64Body(t *testing.T) {
	handler := NewLambdaHandler(newServer(&google.MockClient{}))

	req := postRequest(base64.StdEncoding.EncodeToString([]byte(listToolsMessage)))
	req.IsBase64Encoded = true
	resp, err := handler(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = postRequest("%%%")
	req.IsBase64Encoded = true
	resp, err = handler(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLambdaNotificationAccepted(t *testing.T) {
	handler := NewLambdaHandler(newServer(&google.MockClient{}))

	resp, err := handler(context.Background(), postRequest(notification))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestLambdaRejectsOtherRequests(t *testing.T) {
	handler := NewLambdaHandler(newServer(&google.MockClient{}))

	resp, err := handler(context.Background(), postRequest(""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req := postRequest(listToolsMessage)
	req.RequestContext.HTTP.Method = http.MethodPut
	resp, err = handler(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	req = events.LambdaFunctionURLRequest{RawPath: "/healthz"}
	req.RequestContext.HTTP.Method = http.MethodGet
	resp, err = handler(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", resp.Body)
}

func TestLambdaParseError(t *testing.T) {
	handler := NewLambdaHandler(newServer(&google.MockClient{}))

	resp, err := handler(context.Background(), postRequest("{not json"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded rpcResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &decoded))
	require.NotNil(t, decoded.Error)
}

func TestHTTPHandler(t *testing.T) {
	prom := metrics.NewPrometheus()
	srv := httptest.NewServer(NewHTTPHandler(newServer(&google.MockClient{}), prom.Handler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+MCPPath, "application/json", bytes.NewBufferString(listToolsMessage))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Len(t, decoded.Result.Tools, 11)
}

func TestHTTPHandlerWithoutMetrics(t *testing.T) {
	srv := httptest.NewServer(NewHTTPHandler(newServer(&google.MockClient{}), nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServeHTTPStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ServeHTTP(ctx, "127.0.0.1:0", http.NotFoundHandler()) }()
	cancel()
	require.NoError(t, <-done)
}
