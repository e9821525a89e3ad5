package api

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error" example:"Client not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Client deleted"`
}

const (
	StatusOK          = "ok"
	StatusDegraded    = "degraded"
	StatusUnavailable = "unavailable"
)

// HealthResponse reports the overall state and one entry per dependency,
// e.g. {"status":"degraded","checks":{"database":"ok","email_queue":"down"}}.
type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}
