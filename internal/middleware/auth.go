package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/services"
)

type AdminMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAdminMiddleware(log *logger.Logger, authService services.AuthService) *AdminMiddleware {
	return &AdminMiddleware{log: log.With("middleware", "AdminMiddleware"), authService: authService}
}

// RequireAdmin validates a Bearer token on admin operations. When no admin
// credential is configured the middleware passes everything through, which is
// the original deployment's (unprotected) behavior.
func (am *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !am.authService.Enabled() {
			c.Next()
			return
		}
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		if err := am.authService.VerifyToken(tokenString); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if qToken := c.Query("token"); qToken != "" {
		return qToken
	}
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
