package dto

// ErrorResponse is the body of every non-2xx status API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
