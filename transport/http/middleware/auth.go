package middleware

import (
	"net/http"
	"staybook/infras/jwt"
	"staybook/infras/otel"
	authService "staybook/internal/domains/auth/service"
	"staybook/permissions"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"staybook/shared/identity"
	"staybook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth gates every route listed in permissions.json. Routes missing from the file still need
// a valid token of any domain.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	auth       authService.Auth
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthMiddleware(auth authService.Auth, otel otel.Otel, permissions *permissions.PermissionData) Auth {
	return &authImpl{
		auth:       auth,
		otel:       otel,
		permission: permissions,
	}
}

func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		path := routePattern(request)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.route":      path,
			"http.method":     request.Method,
		})

		var permission permissions.Permission
		if m.permission != nil {
			if m.permission.Skip {
				scope.End()
				next.ServeHTTP(writer, request)

				return
			}

			permission = m.permission.FindPermissions(path, request.Method)
		}

		if permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			err = failure.Unauthorized("Access denied. No token provided.")
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		caller, err := m.auth.Authenticate(ctx, token, permission.Domains())
		if err != nil {
			scope.TraceError(err)
			scope.End()

			if !failure.IsFailure(err) {
				log.Error().Err(err).Str("route", path).Msg("failed to authenticate request")
			}

			response.WithError(writer, err)

			return
		}

		scope.SetAttributes(map[string]any{
			"identity.domain": string(caller.Domain),
			"identity.id":     caller.ID,
		})
		scope.End()

		next.ServeHTTP(writer, request.WithContext(identity.WithIdentity(request.Context(), caller)))
	})
}

// routePattern resolves the chi pattern of the request before the router has matched it.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}
