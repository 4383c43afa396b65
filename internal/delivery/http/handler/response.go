package handler

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error string `json:"error"`
}
