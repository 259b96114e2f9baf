package main

import (
	"os"

	"github.com/chatappointment/services/internal/app"
	"github.com/chatappointment/services/internal/config"
	"github.com/chatappointment/services/internal/services"
)

func main() {
	os.Exit(app.Main(app.Options{
		Descriptor:  services.BotService,
		DefaultPort: config.BotServicePort,
		Chat:        true,
	}))
}
