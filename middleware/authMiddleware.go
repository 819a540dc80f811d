package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-restaurant-ordering/helpers"
)

// Authentication guards the admin surfaces: it requires a valid token in
// the "token" header and exposes the claims to downstream handlers.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authorization token provided"})
			c.Abort()
			return
		}
		claims, err := helpers.ValidateToken(clientToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("uid", claims.Uid)
		c.Set("user_role", claims.User_role)
		c.Next()
	}
}
