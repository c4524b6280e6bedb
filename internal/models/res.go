package models

// FieldError describes a single failed validation constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body returned on 404 and 500 responses.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the body returned on 400 responses, carrying
// per-field errors when the payload failed schema validation.
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// ChatRequest is the body accepted by the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the chatbot's canned reply.
type ChatResponse struct {
	Response string `json:"response"`
}
