package api

import (
	"log"
	"net/http"
	"strings"

	"docquiz/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired ensures the request carries a valid bearer credential and
// puts the resolved user id into the context under "userID".
func AuthRequired(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication is not configured"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := verifier.Verify(token)
		if err != nil {
			log.Printf("WARN: AuthRequired failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
