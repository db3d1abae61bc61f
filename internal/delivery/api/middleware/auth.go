package middleware

import (
	"log/slog"
	"strings"

	"edusync/internal/delivery/api/response"
	deliverycontext "edusync/internal/delivery/context"
	"edusync/internal/domain/entity"
	"edusync/internal/domain/service"
	"edusync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keyClaims = "claims"
	keyActor  = "actor"
)

// AuthMiddleware validates bearer tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Authenticate validates the access token and stores its claims and the
// resulting actor on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(keyClaims, claims)
		SetActor(c, &usecase.Actor{Email: claims.Email, Role: entity.Role(claims.Role)})
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithCaller(c.Request().Context(), claims.Email, claims.Role),
		))

		return next(c)
	}
}

// RequireRole lets the request through only for one of the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	roles := entity.Roles(allowed)
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}
	denied := "Permission denied: require '" + strings.Join(names, "' or '") + "' role"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !roles.Contains(actor.Role) {
				return response.Forbidden(c, "FORBIDDEN", denied)
			}

			return next(c)
		}
	}
}

// GetClaims returns the token claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok
}

// SetActor stores the caller on the context.
func SetActor(c echo.Context, actor *usecase.Actor) {
	c.Set(keyActor, actor)
}

// GetActor returns the caller stored by Authenticate.
func GetActor(c echo.Context) (*usecase.Actor, bool) {
	actor, ok := c.Get(keyActor).(*usecase.Actor)

	return actor, ok
}
