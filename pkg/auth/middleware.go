package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
)

// RequireAuth is a chi middleware that enforces authentication via session
// cookies. It reads the session cookie, resolves the user against the
// registry, and injects the user into the request context. Returns 401
// Unauthorized if the session is missing, invalid, or references an
// unknown user.
//
// After this middleware, handlers can safely call auth.UserFromCtx(r.Context()).
func RequireAuth(store sessions.Store, reg *Registry, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userID, ok := session.Values[sessionUserKey].(string)
			if !ok || userID == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			u, found := reg.Get(userID)
			if !found {
				log.WarnContext(r.Context(), "session references unknown user", "user_id", userID)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
				return
			}

			ctx := WithUser(r.Context(), SessionUser{ID: u.ID, Name: u.Name, Email: u.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
