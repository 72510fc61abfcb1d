package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mitrabahan/backend/pkg/response"
)

// RequireRole rejects callers whose role is outside the allow-set. It
// reads the role Auth put in the context, so it must always be chained
// after Auth, never standalone. Declaring the allow-set at route
// registration keeps the authorization policy readable without opening
// handler bodies.
func RequireRole(roles ...string) gin.HandlerFunc {
	allow := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allow[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString(CtxRoleKey)
		if _, ok := allow[role]; !ok {
			response.Error[any](c, http.StatusForbidden, "insufficient role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
