package app

import (
	"context"
	"log"

	"github.com/chatappointment/services/internal/config"
	"github.com/chatappointment/services/internal/http/handlers"
	"github.com/chatappointment/services/internal/http/routes"
	"github.com/chatappointment/services/internal/logger"
	"github.com/chatappointment/services/internal/server"
	"github.com/chatappointment/services/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options selects which service a binary runs.
type Options struct {
	Descriptor  services.Descriptor
	DefaultPort string
	Chat        bool
}

// NewRouter builds the full route table for a service.
func NewRouter(opts Options, cfg *config.Config, zapLogger *zap.Logger) *gin.Engine {
	info := services.NewInfoService(opts.Descriptor)
	router := routes.NewRouter(handlers.NewServiceHandler(info), cfg, zapLogger)

	if opts.Chat {
		chat := services.NewChatService(zapLogger)
		router.WithChat(handlers.NewChatHandler(chat, zapLogger))
	}

	return router.SetupRoutes()
}

// Main loads configuration, binds the listener and serves until signalled.
// It returns the process exit code.
func Main(opts Options) int {
	cfg, err := config.Load(opts.DefaultPort)
	if err != nil {
		log.Println("Failed to load configuration:", err)
		return 1
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Println("Failed to initialize logger:", err)
		return 1
	}
	defer zapLogger.Sync()

	zapLogger = zapLogger.With(zap.String("service", opts.Descriptor.Name))

	srv := server.New(cfg.Server, NewRouter(opts, cfg, zapLogger), zapLogger)
	if err := srv.Run(context.Background()); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
		return 1
	}

	return 0
}
