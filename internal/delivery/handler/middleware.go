package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/benjaminhze/cribhunter/internal/application/interfaces"
	"github.com/benjaminhze/cribhunter/internal/domain"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
)

const identityKey = "identity"

// Authenticator resolves the bearer token of a request to a user.
type Authenticator struct {
	auth   interfaces.AuthService
	logger *logging.Logger
}

func NewAuthenticator(auth interfaces.AuthService, logger *logging.Logger) *Authenticator {
	return &Authenticator{auth: auth, logger: logger.With("component", "authenticator")}
}

// RequireAuth rejects requests without a valid token for an existing user.
func (a *Authenticator) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := a.resolve(c)
		if err != nil {
			return err
		}
		c.Set(identityKey, user)
		return next(c)
	}
}

// OptionalAuth attaches the identity when one can be resolved and lets the
// request through anonymously otherwise.
func (a *Authenticator) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := a.resolve(c)
		if err != nil {
			if domain.KindOf(err) == domain.KindStore {
				a.logger.Warn("optional authentication degraded to anonymous", "error", err)
			}
			return next(c)
		}
		c.Set(identityKey, user)
		return next(c)
	}
}

func (a *Authenticator) resolve(c echo.Context) (*entities.User, error) {
	token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return nil, domain.NewAuthenticationError("Not authenticated")
	}
	return a.auth.Authenticate(c.Request().Context(), token)
}

// bearerToken extracts the credentials of a "Bearer <token>" header. The
// scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// identity returns the authenticated user, or nil for anonymous requests.
func identity(c echo.Context) *entities.User {
	user, _ := c.Get(identityKey).(*entities.User)
	return user
}
