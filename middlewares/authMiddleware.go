package middlewares

import (
	"net/http"
	"strings"

	"bitbucket.org/craftlane/marketplace_backend/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware decodes the bearer token into actor claims. The identity
// service already resolved role and assigned regions; this only consumes them
// and threads them through the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")

		if auth == "" {
			c.Next()
			return
		}

		bearer := "Bearer "
		if !strings.HasPrefix(auth, bearer) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		auth = auth[len(bearer):]

		validate, err := utils.JwtValidate(auth)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		customClaim, _ := validate.Claims.(*utils.JwtCustomClaim)

		ctx := utils.SetBusinessIdInContext(c.Request.Context(), customClaim.BusinessId)
		ctx = utils.SetUserIdInContext(ctx, customClaim.ID)
		ctx = utils.SetRoleInContext(ctx, customClaim.Role)
		ctx = utils.SetRegionIdsInContext(ctx, customClaim.RegionIds)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
