package response

// MessageResponse is the body of informational and auth failure responses
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of client and server errors. Details carries
// per-field validation messages.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}
