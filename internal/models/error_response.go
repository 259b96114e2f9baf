package models

// ErrorResponse is the body of every non-2xx response the services write.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"Cannot GET /unknown"`
	Error      string `json:"error" example:"Not Found"`
}
