package middleware

import (
	"net/http"
	"strings"

	"qrlink/internal/auth"

	"github.com/gin-gonic/gin"
)

// AccountIDKey is the gin context key carrying the authenticated account ID
const AccountIDKey = "account_id"

// Auth returns a middleware that requires a valid bearer token and puts
// the account ID into the request context
func Auth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, ok := bearerAccountID(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Authentication required",
			})
			return
		}
		c.Set(AccountIDKey, accountID)
		c.Next()
	}
}

// OptionalAuth returns a middleware that attaches the account ID when a
// valid token is present and treats everything else as anonymous
func OptionalAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if accountID, ok := bearerAccountID(c, tokens); ok {
			c.Set(AccountIDKey, accountID)
		}
		c.Next()
	}
}

// AccountID extracts the authenticated account ID from the context
func AccountID(c *gin.Context) (string, bool) {
	v, ok := c.Get(AccountIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func bearerAccountID(c *gin.Context, tokens *auth.Manager) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header {
		return "", false
	}

	claims, err := tokens.Validate(tokenString)
	if err != nil {
		return "", false
	}
	return claims.AccountID, true
}
