package services

import "github.com/chatappointment/services/internal/models"

type InfoService struct {
	descriptor Descriptor
}

func NewInfoService(descriptor Descriptor) *InfoService {
	return &InfoService{descriptor: descriptor}
}

func (s *InfoService) Descriptor() Descriptor {
	return s.descriptor
}

// Health has no dependencies to probe, so a running process is healthy.
func (s *InfoService) Health() models.HealthStatus {
	return models.HealthStatus{
		Status:  models.StatusHealthy,
		Service: s.descriptor.Name,
	}
}

func (s *InfoService) Info() models.ServiceInfo {
	return models.ServiceInfo{
		Message: s.descriptor.Title,
		Version: s.descriptor.Version,
	}
}
