package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-crm/internal/cache"
	"github.com/BruksfildServices01/barber-crm/internal/config"
)

const (
	ContextOwnerID  = "ownerID"
	ContextTokenJTI = "tokenJTI"
	ContextTokenExp = "tokenExp"
)

// AuthMiddleware valida o bearer token e resolve o owner da requisição.
// Tudo abaixo dele enxerga apenas registros desse owner.
func AuthMiddleware(cfg *config.Config, denylist *cache.TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		ownerID, ok1 := claims["sub"].(string)
		jti, ok2 := claims["jti"].(string)
		exp, ok3 := claims["exp"].(float64)
		if !ok1 || !ok2 || !ok3 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		if denylist != nil && denylist.IsRevoked(c.Request.Context(), jti) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
			return
		}

		c.Set(ContextOwnerID, ownerID)
		c.Set(ContextTokenJTI, jti)
		c.Set(ContextTokenExp, int64(exp))

		c.Next()
	}
}
