package routes

import (
	_ "github.com/chatappointment/services/docs"
	"github.com/chatappointment/services/internal/config"
	"github.com/chatappointment/services/internal/http/handlers"
	"github.com/chatappointment/services/internal/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	serviceHandler *handlers.ServiceHandler
	chatHandler    *handlers.ChatHandler
	cfg            *config.Config
	logger         *zap.Logger
}

func NewRouter(
	serviceHandler *handlers.ServiceHandler,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		serviceHandler: serviceHandler,
		cfg:            cfg,
		logger:         logger,
	}
}

// WithChat mounts POST /chat.
func (r *Router) WithChat(chatHandler *handlers.ChatHandler) *Router {
	r.chatHandler = chatHandler
	return r
}

func (r *Router) SetupRoutes() *gin.Engine {
	gin.SetMode(r.cfg.HTTP.GinMode)

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS(r.cfg.CORS, r.logger))
	router.Use(middleware.SecurityHeaders(r.cfg.HTTP.SecurityHeaders))

	router.GET("/health", r.serviceHandler.HealthCheck)
	router.GET("/", r.serviceHandler.GetInfo)

	if r.chatHandler != nil {
		router.POST("/chat", r.chatHandler.Chat)
	}

	if r.cfg.Swagger.Enabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.InstanceName(r.serviceHandler.ServiceName())))
	}

	router.NoRoute(handlers.NotFound)

	return router
}
