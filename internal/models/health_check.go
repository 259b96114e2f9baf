package models

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"user-service"`
}

const StatusHealthy = "healthy"
