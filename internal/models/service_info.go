package models

// ServiceInfo is the body of GET /.
type ServiceInfo struct {
	Message string `json:"message" example:"ChatAppointment User Service"`
	Version string `json:"version" example:"1.0.0"`
}
