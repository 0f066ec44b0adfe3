package middleware

import (
	"net/http"
	"strings"

	"sarasblogg/internal/pkg"
	"sarasblogg/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "email"
	ContextRolesKey  = "roles"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, status, msg := resolveClaims(c)
		if claims == nil {
			c.JSON(status, gin.H{"msg": msg})
			c.Abort()
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves identity when a valid token is supplied but
// lets anonymous requests through. Public comment posting uses it.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if claims, _, _ := resolveClaims(c); claims != nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// RequireRoles gates a route on holding at least one of the given
// roles. Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		held := Roles(c)
		for _, want := range roles {
			for _, have := range held {
				if strings.EqualFold(have, want) {
					c.Next()
					return
				}
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"msg": "insufficient role"})
		c.Abort()
	}
}

func resolveClaims(c *gin.Context) (*pkg.Claims, int, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, http.StatusUnauthorized, "missing authorization header"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, http.StatusUnauthorized, "invalid authorization format"
	}

	tokenStr := parts[1]
	claims, err := pkg.ParseAccess(tokenStr)
	if err != nil {
		return nil, http.StatusUnauthorized, "invalid or expired token"
	}

	userRep := &redis.UserRepository{}
	originToken, err := userRep.GetUserToken(claims.UserID)
	if err != nil || originToken != tokenStr {
		return nil, http.StatusUnauthorized, "Account has been logging elsewhere"
	}

	if err := userRep.ExtendUserToken(claims.UserID); err != nil {
		return nil, http.StatusInternalServerError, err.Error()
	}
	return claims, 0, ""
}

func setIdentity(c *gin.Context, claims *pkg.Claims) {
	c.Set(ContextUserIDKey, claims.UserID)
	c.Set(ContextEmailKey, claims.Email)
	c.Set(ContextRolesKey, claims.Roles)
}

func UserID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}

func Email(c *gin.Context) string {
	if v, ok := c.Get(ContextEmailKey); ok {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}

func Roles(c *gin.Context) []string {
	if v, ok := c.Get(ContextRolesKey); ok {
		if roles, ok := v.([]string); ok {
			return roles
		}
	}
	return nil
}
