package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders adds security headers
func SecurityHeaders(enabled bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if enabled {
			ctx.Header("X-Frame-Options", "DENY")
			ctx.Header("X-Content-Type-Options", "nosniff")
			ctx.Header("X-XSS-Protection", "1; mode=block")
			ctx.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		ctx.Next()
	}
}
