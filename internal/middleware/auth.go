package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/SlotBooker/internal/auth"
	"github.com/wb-go/wbf/ginext"
)

const (
	UserIDKey = "user_id"
	RoleKey   = "role"
	EmailKey  = "email"
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

func JWTAuth(tokens TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.Set("error", "missing bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
			return
		}

		c.Set(UserIDKey, claims.Sub)
		c.Set(RoleKey, claims.Role)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// RequireRole must run after JWTAuth.
func RequireRole(roles ...string) ginext.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *ginext.Context) {
		role := c.GetString(RoleKey)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
