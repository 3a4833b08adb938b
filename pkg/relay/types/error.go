package types

// ErrorResponse is the uniform error envelope returned by every relay
// endpoint. The UI only ever inspects the message field.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse creates an error envelope with the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// ValidationError indicates a required request field was missing or
// malformed. It short-circuits the operation before any upstream call.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}
