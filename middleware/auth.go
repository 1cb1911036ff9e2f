package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clinovia/utils"
)

// PatientIDKey is the gin context key holding the authenticated patient ID.
const PatientIDKey = "patientID"

// JWTAuthPatientMiddleware validates the bearer token and stores the
// patient ID on the request context.
func JWTAuthPatientMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		patientID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || patientID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(PatientIDKey, patientID)
		c.Next()
	}
}

// PatientID returns the authenticated patient ID from the context.
func PatientID(c *gin.Context) string {
	id, _ := c.Get(PatientIDKey)
	s, _ := id.(string)
	return s
}
