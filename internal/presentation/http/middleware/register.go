package middleware

import "github.com/gin-gonic/gin"

// DefaultRegisterID is used when a client does not identify its register.
// Single-counter shops never need to send the header.
const DefaultRegisterID = "main"

// RegisterMiddleware resolves which register (billing counter) the request
// belongs to. Each register keeps its own draft bill, so every billing route
// needs this resolved before the handler runs.
func RegisterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		registerID := c.GetHeader("X-Register-ID")
		if registerID == "" {
			registerID = DefaultRegisterID
		}
		c.Set("register_id", registerID)
		c.Next()
	}
}
