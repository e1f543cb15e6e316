package models

// ErrorResponse is the standard error payload returned by the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// OKResponse is the standard acknowledgement payload
type OKResponse struct {
	OK bool `json:"ok"`
}
