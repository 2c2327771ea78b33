package middlewares

import (
	"net/http"
	"strings"

	"github.com/smartZeee/worker-side/utils"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware ตรวจ JWT จากทั้ง query และ header (browser WS ใส่ header ไม่ได้)
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		if t := c.Query("token"); t != "" {
			tokenStr = t
		} else {
			h := c.GetHeader("Authorization")
			if h != "" && strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("employeeId", claims.EmployeeID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
