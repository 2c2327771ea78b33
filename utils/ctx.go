package utils

import "github.com/gin-gonic/gin"

func CurrentEmployeeID(c *gin.Context) string {
	if v, ok := c.Get("employeeId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
