package services

// Descriptor identifies the service a binary reports on / and /health.
type Descriptor struct {
	Name    string
	Title   string
	Version string
}

var (
	UserService = Descriptor{
		Name:    "user-service",
		Title:   "ChatAppointment User Service",
		Version: "1.0.0",
	}

	BotService = Descriptor{
		Name:    "bot-service",
		Title:   "ChatAppointment Bot Service",
		Version: "1.0.0",
	}
)
