// Package proxy converts between API Gateway proxy events and standard
// net/http requests and responses, so the hosting platform can invoke an
// http.Handler it knows nothing about.
package proxy

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// NewRequest converts an API Gateway proxy request into a *http.Request
// carrying the same method, path, query string, headers and body. The
// request is passed through as-is; no validation or normalization happens
// here.
func NewRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
		body = string(decoded)
	}

	path := event.Path
	if path == "" {
		path = "/"
	}
	u := url.URL{
		Path:     path,
		RawQuery: queryString(event),
	}

	req, err := http.NewRequestWithContext(ctx, event.HTTPMethod, u.String(), strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	// Multi-value headers are the complete set when present; the
	// single-value map only fills in keys the gateway did not repeat.
	for name, values := range event.MultiValueHeaders {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	for name, value := range event.Headers {
		if req.Header.Get(name) == "" {
			req.Header.Set(name, value)
		}
	}

	if host := req.Header.Get("Host"); host != "" {
		req.Host = host
		req.Header.Del("Host")
	}
	if ip := event.RequestContext.Identity.SourceIP; ip != "" {
		req.RemoteAddr = ip
	}
	req.RequestURI = u.RequestURI()

	return req, nil
}

// queryString rebuilds the raw query from the event's parameter maps.
func queryString(event events.APIGatewayProxyRequest) string {
	values := url.Values{}
	for name, vs := range event.MultiValueQueryStringParameters {
		for _, v := range vs {
			values.Add(name, v)
		}
	}
	for name, v := range event.QueryStringParameters {
		if _, ok := values[name]; !ok {
			values.Set(name, v)
		}
	}
	return values.Encode()
}
