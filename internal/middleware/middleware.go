package middleware

import (
	"net/http"
	"strings"

	"shift-scheduler/internal/model"
	"shift-scheduler/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextPrincipalKey = "principal"

// TokenVerifier is satisfied by *service.TokenIssuer.
type TokenVerifier interface {
	Verify(token string) (*model.Principal, error)
}

// Authenticate 從 Authorization header 取出 Bearer token 並驗證
// 任何失敗都回傳 nil，不會 panic
func Authenticate(verifier TokenVerifier, r *http.Request) *model.Principal {
	if verifier == nil || r == nil {
		return nil
	}
	authHeader := r.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return nil
	}
	p, err := verifier.Verify(token)
	if err != nil {
		return nil
	}
	return p
}

// RequireAuth rejects requests without a valid token and stores the
// principal in the context for handlers.
func RequireAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Authenticate(verifier, c.Request())
			if p == nil {
				return service.ErrUnauthenticated
			}
			c.Set(ContextPrincipalKey, *p)
			return next(c)
		}
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return service.ErrUnauthenticated
			}
			if _, ok := allowed[p.Role]; !ok {
				return service.ErrForbidden
			}
			return next(c)
		}
	}
}

// PrincipalFrom 取得 RequireAuth 放入的 principal
func PrincipalFrom(c echo.Context) (model.Principal, bool) {
	p, ok := c.Get(ContextPrincipalKey).(model.Principal)
	return p, ok
}
