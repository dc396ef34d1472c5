package dto

// ValidationErrorResponse is the 400 envelope: every triggered message is
// collected, not just the first.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewValidationErrorResponse builds a 400 body from collected messages.
func NewValidationErrorResponse(messages []string) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: messages}
}

// ServerErrorResponse is the 500 envelope. Error carries diagnostic detail
// only outside production mode; otherwise it stays an empty object.
type ServerErrorResponse struct {
	Message string      `json:"message"`
	Error   interface{} `json:"error"`
}
