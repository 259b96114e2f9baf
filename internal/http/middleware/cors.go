package middleware

import (
	"net/http"
	"strings"

	"github.com/chatappointment/services/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// CORS accepts any origin with credentials. The request Origin is reflected
// back because browsers reject "*" on credentialed responses. Every OPTIONS
// carrying an Origin is answered here and never reaches the router.
func CORS(cfg config.CORSConfig, logger *zap.Logger) gin.HandlerFunc {
	opts := cors.Options{
		AllowOriginFunc: func(string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders:       []string{"*"},
		AllowCredentials:     true,
		MaxAge:               cfg.MaxAge,
		OptionsSuccessStatus: http.StatusNoContent,
	}
	if cfg.Debug {
		opts.Debug = true
		opts.Logger = zap.NewStdLog(logger.Named("cors"))
	}
	c := cors.New(opts)

	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)

		origin := ctx.GetHeader("Origin")
		if origin == "" {
			ctx.Next()
			return
		}

		// rs/cors skips methods outside AllowedMethods; the origin is
		// reflected regardless of method.
		reflectOrigin(ctx.Writer.Header(), origin)

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}

func reflectOrigin(h http.Header, origin string) {
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Allow-Credentials", "true")
	for _, v := range h.Values("Vary") {
		if strings.Contains(v, "Origin") {
			return
		}
	}
	h.Add("Vary", "Origin")
}
