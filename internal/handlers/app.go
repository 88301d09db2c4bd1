package handlers

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"guardian-eye-api/internal/proxy"
)

// AppHandler forwards platform requests into the web application's entry
// point. It performs no validation, transformation, or error handling of
// its own; everything past the event conversion belongs to the application.
type AppHandler struct {
	app http.Handler
}

// NewAppHandler creates a pass-through handler for the given entry point.
func NewAppHandler(app http.Handler) *AppHandler {
	return &AppHandler{app: app}
}

// Handle converts the proxy event, invokes the application, and returns
// whatever it produced. Conversion failures propagate to the runtime.
func (h *AppHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := proxy.NewRequest(ctx, request)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	rec := proxy.NewRecorder()
	h.app.ServeHTTP(rec, req)

	return rec.Result(), nil
}
