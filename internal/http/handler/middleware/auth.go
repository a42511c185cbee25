package middleware

import (
	"calendr/internal/core"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// UserKey holds the authenticated core.Identity in the request context.
const UserKey contextKey = "authUser"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Authorizer . Authorizer
type Authorizer interface {
	Authorize(token string) (core.Identity, error)
}

type AuthMiddleware struct {
	logs *zap.SugaredLogger
	auth Authorizer
}

func NewAuthMiddleware(logger *zap.SugaredLogger, auth Authorizer) *AuthMiddleware {
	return &AuthMiddleware{
		logs: logger,
		auth: auth,
	}
}

// RequireUser admits only requests carrying a valid bearer token. A missing
// token yields 401, a token that fails verification yields 403.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			reject(w, http.StatusUnauthorized, "Access token required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			reject(w, http.StatusUnauthorized, "Access token required")
			return
		}

		identity, err := m.auth.Authorize(parts[1])
		if err != nil {
			requestId := ""
			if reqIdCtx := r.Context().Value(RequestIDKey); reqIdCtx != nil {
				requestId = reqIdCtx.(string)
			}
			m.logs.Errorw("token verification failed", "error", err, "request_id", requestId)

			reject(w, http.StatusForbidden, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the identity stored by RequireUser.
func IdentityFromContext(ctx context.Context) (core.Identity, bool) {
	identity, ok := ctx.Value(UserKey).(core.Identity)
	return identity, ok
}

func reject(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
