package middlewares

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/models"
)

// TokenHeader is the custom header clients carry the signed token in.
const TokenHeader = "x-auth-token"

const claimsContextKey = "claims"

// Claims is the token payload: enough identity to serve requests without a
// store lookup, plus the admin flag (which the admin gate re-checks against
// the store anyway).
type Claims struct {
	UserID  uint   `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the user, expiring after the configured
// duration (7 days).
func GenerateToken(cfg config.AuthConfig, user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// RequireAuth rejects requests without a valid token before any handler runs.
// A missing header fails before verification is even attempted.
func RequireAuth(cfg config.AuthConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := ctx.GetHeader(TokenHeader)
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied, no token provided"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx.Set(claimsContextKey, claims)
		ctx.Next()
	}
}

// CurrentClaims returns the verified claims RequireAuth stored on the context.
func CurrentClaims(ctx *gin.Context) (*Claims, bool) {
	value, exists := ctx.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*Claims)
	return claims, ok
}
