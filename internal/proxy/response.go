package proxy

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// ResponseRecorder is an http.ResponseWriter that captures the
// application's response for conversion into an API Gateway proxy response.
type ResponseRecorder struct {
	status      int
	header      http.Header
	body        bytes.Buffer
	wroteHeader bool
}

// NewRecorder returns a recorder ready to be handed to an http.Handler.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{
		status: http.StatusOK,
		header: make(http.Header),
	}
}

// Header implements http.ResponseWriter.
func (r *ResponseRecorder) Header() http.Header {
	return r.header
}

// Write implements http.ResponseWriter.
func (r *ResponseRecorder) Write(p []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.body.Write(p)
}

// WriteHeader implements http.ResponseWriter.
func (r *ResponseRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
}

// Result renders the captured response as an API Gateway proxy response.
// Bodies that are not valid UTF-8 are base64-encoded, since the proxy
// response body is a string field.
func (r *ResponseRecorder) Result() events.APIGatewayProxyResponse {
	resp := events.APIGatewayProxyResponse{
		StatusCode:        r.status,
		Headers:           make(map[string]string, len(r.header)),
		MultiValueHeaders: make(map[string][]string, len(r.header)),
	}

	for name, values := range r.header {
		if len(values) > 0 {
			resp.Headers[name] = values[len(values)-1]
		}
		resp.MultiValueHeaders[name] = values
	}

	raw := r.body.Bytes()
	if utf8.Valid(raw) {
		resp.Body = string(raw)
	} else {
		resp.Body = base64.StdEncoding.EncodeToString(raw)
		resp.IsBase64Encoded = true
	}

	return resp
}
