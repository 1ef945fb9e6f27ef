package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const AccessCodeHeader = "X-Access-Code"

// AccessCodeMiddleware closes a deployment to visitors without the shared code.
// The code may come in the X-Access-Code header, the access_code query
// parameter or the access_code form field. An empty code disables the check.
func AccessCodeMiddleware(code string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if code == "" {
			c.Next()
			return
		}
		clientCode := c.GetHeader(AccessCodeHeader)
		if clientCode == "" {
			clientCode = c.Query("access_code")
		}
		if clientCode == "" && c.ContentType() == "application/x-www-form-urlencoded" {
			clientCode = c.PostForm("access_code")
		}
		if subtle.ConstantTimeCompare([]byte(clientCode), []byte(code)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid access code"})
			return
		}
		c.Next()
	}
}
