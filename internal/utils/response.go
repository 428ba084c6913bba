package utils

// ErrorResponse is the generic error body. Internal error detail is logged
// server-side and never placed here.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a new ErrorResponse instance.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
