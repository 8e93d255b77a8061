package middleware

import (
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/cannahub/admin-console/internal/auth"
)

// AuthMiddleware validates the operator's bearer token and stashes the
// operator identity on the request context. Requests without a token are
// rejected; every console route sits behind this.
func AuthMiddleware(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		userID, _ := claims["sub"].(string)
		op := &auth.OperatorContext{UserID: userID, Token: tokenString}
		c.Request = c.Request.WithContext(auth.WithOperator(c.Request.Context(), op))
		c.Next()
	}
}

// StoreScopeMiddleware copies the X-Store-ID header into the request context
// so controllers can forward it to store-scoped upstream resources.
func StoreScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if storeID := c.Request.Header.Get("X-Store-ID"); storeID != "" {
			c.Request = c.Request.WithContext(auth.WithStoreID(c.Request.Context(), storeID))
		}
		c.Next()
	}
}
