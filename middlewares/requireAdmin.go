package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/stores"
)

// RequireAdmin runs after RequireAuth and checks the admin flag against the
// account store rather than trusting the token claim, so a demoted admin is
// locked out as soon as the flag flips.
func RequireAdmin(users stores.UserStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, exists := CurrentClaims(ctx)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
			return
		}

		user, err := users.FindByID(ctx.Request.Context(), claims.UserID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify permissions"})
			return
		}
		if !user.IsAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		ctx.Next()
	}
}
