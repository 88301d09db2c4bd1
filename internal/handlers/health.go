// Package handlers provides the gateway's request handlers.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"guardian-eye-api/internal/utils"
)

// Pinger is the liveness probe the health handler issues against the
// database. *database.DB satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is the response structure for health checks.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	MongoDB   string `json:"mongodb"`
}

// Handle processes health check requests. It always answers 200: a failed
// ping is reported inside the body, never as a transport-level error. One
// synchronous ping per request, no retries.
func (h *HealthHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := utils.GetLogger()
	requestID := uuid.NewString()

	mongoStatus := "connected"
	if err := h.db.Ping(ctx); err != nil {
		mongoStatus = "error: " + err.Error()
		logger.Warn("MongoDB ping failed",
			utils.String("requestID", requestID),
			utils.Error(err))
	}

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		MongoDB:   mongoStatus,
	}

	body, _ := json.Marshal(response)

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}
