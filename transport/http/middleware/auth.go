package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

// TokenRevocation reports whether a token was revoked by a logout.
type TokenRevocation interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RequireRole(roles ...string) func(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	revocation TokenRevocation
	otel       otel.Otel
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, revocation TokenRevocation, otel otel.Otel) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		revocation: revocation,
		otel:       otel,
	}
}

// Auth validates the bearer token and attaches the caller identity to the request context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		reject := func(message string) {
			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			reject("Missing authorization header")

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject("Invalid authorization header format")

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				reject("Token has expired")
			case errors.Is(err, jwt.ErrInvalidClaim):
				reject("Invalid token claims")
			default:
				reject("Invalid token")
			}

			return
		}

		if m.revocation != nil {
			revoked, err := m.revocation.IsRevoked(ctx, claims.TokenID)
			if err != nil {
				log.Warn().Err(err).Msg("failed to check token revocation")
			}

			if revoked {
				reject("Token has been revoked")

				return
			}
		}

		ctx = shared.WithIdentity(ctx, shared.Identity{UserID: claims.UserID, Username: claims.Username, Role: claims.Role})
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		if claims.ExpiresAt != nil {
			ctx = context.WithValue(ctx, constant.ContextKeyTokenExpiry, claims.ExpiresAt.Time)
		}

		scope.SetAttribute("user.role", claims.Role)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireRole admits callers whose role is one of roles. It must run after Auth.
func (m *authRoleImpl) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")

			identity, ok := shared.GetIdentity(request.Context())
			if !ok {
				err := failure.AuthPreconditionError
				log.Error().Str("path", request.URL.Path).Msg("role check reached without authentication")

				scope.TraceError(err)
				scope.End()
				response.WithError(writer, err)

				return
			}

			if !slices.Contains(roles, identity.Role) {
				err := failure.ForbiddenError
				scope.TraceError(err)
				scope.SetAttributes(map[string]any{
					"user_role":     identity.Role,
					"allowed_roles": roles,
					"reason":        "role_not_allowed",
				})
				scope.End()
				response.WithError(writer, err)

				return
			}

			scope.End()
			next.ServeHTTP(writer, request)
		})
	}
}
