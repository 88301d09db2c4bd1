package proxy_test

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardian-eye-api/internal/proxy"
)

func TestNewRequest_Basic(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/api/reports",
		QueryStringParameters: map[string]string{
			"page": "2",
		},
		MultiValueQueryStringParameters: map[string][]string{
			"tag": {"a", "b"},
		},
		Headers: map[string]string{
			"Content-Type": "application/json",
			"Host":         "api.example.com",
		},
		Body: `{"kind":"daily"}`,
		RequestContext: events.APIGatewayProxyRequestContext{
			Identity: events.APIGatewayRequestIdentity{SourceIP: "203.0.113.9"},
		},
	}

	req, err := proxy.NewRequest(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/reports", req.URL.Path)
	assert.Equal(t, "2", req.URL.Query().Get("page"))
	assert.Equal(t, []string{"a", "b"}, req.URL.Query()["tag"])
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "api.example.com", req.Host)
	assert.Equal(t, "203.0.113.9", req.RemoteAddr)

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"daily"}`, string(body))
}

func TestNewRequest_MultiValueHeadersWin(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/",
		Headers: map[string]string{
			"Accept":    "application/json",
			"X-Only-In": "single",
		},
		MultiValueHeaders: map[string][]string{
			"Accept": {"text/html", "application/json"},
		},
	}

	req, err := proxy.NewRequest(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, []string{"text/html", "application/json"}, req.Header.Values("Accept"))
	assert.Equal(t, "single", req.Header.Get("X-Only-In"))
}

func TestNewRequest_Base64Body(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/upload",
		Body:            base64.StdEncoding.EncodeToString([]byte("binary payload")),
		IsBase64Encoded: true,
	}

	req, err := proxy.NewRequest(context.Background(), event)
	require.NoError(t, err)

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "binary payload", string(body))
}

func TestNewRequest_InvalidBase64(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/upload",
		Body:            "%%%not base64%%%",
		IsBase64Encoded: true,
	}

	_, err := proxy.NewRequest(context.Background(), event)
	assert.Error(t, err)
}

func TestRecorder_DefaultStatus(t *testing.T) {
	rec := proxy.NewRecorder()
	_, err := io.WriteString(rec, "hello")
	require.NoError(t, err)

	resp := rec.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", resp.Body)
	assert.False(t, resp.IsBase64Encoded)
}

func TestRecorder_ExplicitStatusAndHeaders(t *testing.T) {
	rec := proxy.NewRecorder()
	rec.Header().Set("Content-Type", "application/json")
	rec.Header().Add("Set-Cookie", "a=1")
	rec.Header().Add("Set-Cookie", "b=2")
	rec.WriteHeader(http.StatusAccepted)
	rec.WriteHeader(http.StatusTeapot) // later calls are ignored
	_, _ = io.WriteString(rec, `{}`)

	resp := rec.Result()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, []string{"a=1", "b=2"}, resp.MultiValueHeaders["Set-Cookie"])
}

func TestRecorder_BinaryBody(t *testing.T) {
	binary := []byte{0xff, 0xfe, 0x00, 0x01}
	rec := proxy.NewRecorder()
	_, err := rec.Write(binary)
	require.NoError(t, err)

	resp := rec.Result()
	require.True(t, resp.IsBase64Encoded)
	decoded, err := base64.StdEncoding.DecodeString(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, binary, decoded)
}
