package dto

// APIResponse is the uniform envelope every endpoint returns: a status tag,
// a human-readable message, and optional payload. Callers distinguish success
// from business-rule failure by the State field alone.
type APIResponse struct {
	State   string      `json:"state"` // "ok" or "error"
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK builds a success envelope.
func OK(message string, data interface{}) APIResponse {
	return APIResponse{State: "ok", Message: message, Data: data}
}

// Error builds an error envelope.
func Error(message string) APIResponse {
	return APIResponse{State: "error", Message: message}
}
