// Package auth provides the demo sign-in flow: an in-memory user registry
// and cookie-backed sessions.
//
// Session keys should be 32 or 64 bytes for HMAC authentication, and 16, 24,
// or 32 bytes for AES encryption. Production deployments must use
// cryptographically random keys generated with:
//
//	openssl rand -base64 32
package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName    = "stockroom_session"
	sessionUserKey = "user_id"

	sessionMaxAge = 7 * 24 * 60 * 60 // 7 days, in seconds
)

// NewSessionStore creates a cookie session store. Session values are
// authenticated with authKey and encrypted with encryptionKey
// (gorilla/securecookie underneath), so only an opaque blob reaches the
// client. State beyond the user ID stays server-side in the Registry.
//
// secureCookie must be true in production (HTTPS only).
func NewSessionStore(authKey, encryptionKey []byte, secureCookie bool) sessions.Store {
	store := sessions.NewCookieStore(authKey, encryptionKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SaveSession writes the user's ID into the session cookie.
func SaveSession(store sessions.Store, w http.ResponseWriter, r *http.Request, u User) error {
	session, _ := store.Get(r, sessionName)
	session.Values[sessionUserKey] = u.ID
	return session.Save(r, w)
}

// ClearSession expires the session cookie.
func ClearSession(store sessions.Store, w http.ResponseWriter, r *http.Request) error {
	session, _ := store.Get(r, sessionName)
	session.Options.MaxAge = -1
	delete(session.Values, sessionUserKey)
	return session.Save(r, w)
}
