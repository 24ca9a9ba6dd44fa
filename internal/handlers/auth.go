package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/stellar-compass/learning-service/internal/models"
)

// Claims are the token claims the service relies on: the caller's email and
// the roles assigned by the identity provider ("user_roles").
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"user_roles"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller identity derived from the bearer
// token, passed explicitly through the request context. There is no
// process-wide current-caller state.
type Principal struct {
	Email string
	Roles []string
}

// HasRole reports whether the principal's roles claim contains the given
// role. It is false when the claim is absent or empty.
func (p Principal) HasRole(role models.UserRole) bool {
	for _, r := range p.Roles {
		if r == string(role) {
			return true
		}
	}
	return false
}

const principalKey = "principal"

// JWTAuthMiddleware provides authentication from a bearer JWT.
type JWTAuthMiddleware struct {
	secret []byte
}

func NewJWTAuthMiddleware(secret string) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{secret: []byte(secret)}
}

// AuthMiddleware extracts and verifies the bearer token and stores the
// caller's Principal in the gin context.
func (m *JWTAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "Unauthorized",
				Message: "authorization header missing",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "Unauthorized",
				Message: "invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "Unauthorized",
				Message: "invalid token",
			})
			c.Abort()
			return
		}

		c.Set(principalKey, Principal{
			Email: claims.Email,
			Roles: claims.Roles,
		})

		c.Next()
	}
}

// RequireRoleMiddleware rejects callers whose roles claim contains none of
// the required roles. The service call behind the route is never reached on
// denial.
func (m *JWTAuthMiddleware) RequireRoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "Unauthorized",
				Message: "caller identity missing",
			})
			c.Abort()
			return
		}

		for _, role := range requiredRoles {
			if principal.HasRole(role) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "Forbidden",
			Message: "insufficient role permissions",
		})
		c.Abort()
	}
}

// GetPrincipal returns the authenticated caller stored by AuthMiddleware.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := v.(Principal)
	return principal, ok
}
