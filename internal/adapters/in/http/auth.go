package http

import (
	"net/http"
	"strings"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// Claims is the token payload issued by the external auth service. Identity
// lives in the registered subject; name and role ride alongside.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewAuthMiddleware returns middleware that authenticates every request from
// its Bearer token and stores the resulting Principal in the echo context.
//
// The token is trusted for identity, name and role. The home branch is NOT
// read from the token: it is resolved against the staff directory on every
// request, so a reassignment takes effect without reissuing tokens.
func NewAuthMiddleware(secret []byte, directory ports.StaffDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims := &Claims{}
			_, err := jwt.ParseWithClaims(raw, claims, func(_ *jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token",
				})
			}

			userID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token subject",
				})
			}

			role, err := access.RoleFromString(claims.Role)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token role",
				})
			}

			var homeBranchID *kernel.UUID
			if role.IsBranchBound() {
				homeBranchID, err = directory.HomeBranch(c.Request().Context(), userID)
				if err != nil {
					return c.JSON(http.StatusInternalServerError, ErrorResponse{
						Code:    http.StatusInternalServerError,
						Message: "Failed to resolve branch assignment",
					})
				}
			}

			principal, err := access.NewPrincipal(userID, claims.Name, role, homeBranchID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token claims",
				})
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// RequireRoles returns middleware admitting only the listed roles. It must
// run after NewAuthMiddleware.
func RequireRoles(roles ...access.Role) echo.MiddlewareFunc {
	allowed := make(map[access.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := principalFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Not authenticated",
				})
			}

			if _, ok := allowed[principal.Role()]; !ok {
				return c.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "Role is not permitted to perform this operation",
				})
			}

			return next(c)
		}
	}
}

func principalFrom(c echo.Context) (access.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(access.Principal)
	return principal, ok
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
