package handlers

// ErrorResponse is the error body shared by every endpoint. Details carries
// field-level validation information only; upstream and internal failure
// detail stays in the server logs.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
