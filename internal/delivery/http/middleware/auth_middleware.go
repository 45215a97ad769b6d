package middleware

import (
	"errors"
	"strings"

	"career-canvas/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey    = "user_id"
	CtxCompanyIDKey = "company_id"
	CtxEmailKey     = "email"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// RequireUser admits seeker principals issued by the identity provider and
// exposes the authenticated user id via locals.
func (m *AuthMiddleware) RequireUser() fiber.Handler {
	return m.require(jwt.PrincipalUser, CtxUserIDKey)
}

// RequireCompany admits recruiter principals issued by the company login flow.
func (m *AuthMiddleware) RequireCompany() fiber.Handler {
	return m.require(jwt.PrincipalCompany, CtxCompanyIDKey)
}

func (m *AuthMiddleware) require(principalType, localsKey string) fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError("Not authorized. Login again", nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError("Session expired. Login again", err)
			}
			return NewAppError("Not authorized. Login again", err)
		}

		if claims.PrincipalType != principalType {
			return NewAppError("Not authorized. Login again", nil)
		}

		c.Locals(localsKey, claims.PrincipalID)
		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
