package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
)

// SignInRequest is the request body for POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest is the request body for POST /auth/signup.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse is the wire shape of an authenticated user. The password
// digest never leaves the registry.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Routes registers the sign-in/sign-up/sign-out endpoints. These sit
// outside the authenticated /api subtree.
func Routes(r chi.Router, reg *Registry, store sessions.Store, log logger.Logger) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin", signInHandler(reg, store, log))
		r.Post("/signup", signUpHandler(reg, store, log))
		r.Post("/signout", signOutHandler(store, log))
	})
}

func signInHandler(reg *Registry, store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := pkgvalidator.ValidateRequest[SignInRequest](w, r)
		if !ok {
			return
		}

		u, err := reg.SignIn(req.Email, req.Password)
		if err != nil {
			// Same response for unknown email and wrong password.
			httpx.JSONError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		if err := SaveSession(store, w, r, u); err != nil {
			log.ErrorContext(r.Context(), "failed to save session", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "failed to establish session")
			return
		}

		httpx.JSON(w, http.StatusOK, UserResponse{ID: u.ID, Name: u.Name, Email: u.Email})
	}
}

func signUpHandler(reg *Registry, store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := pkgvalidator.ValidateRequest[SignUpRequest](w, r)
		if !ok {
			return
		}

		u, err := reg.SignUp(req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrEmailTaken) {
				httpx.JSONError(w, http.StatusConflict, err.Error())
				return
			}
			log.ErrorContext(r.Context(), "sign-up failed", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "sign-up failed")
			return
		}

		if err := SaveSession(store, w, r, u); err != nil {
			log.ErrorContext(r.Context(), "failed to save session", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "failed to establish session")
			return
		}

		httpx.JSON(w, http.StatusCreated, UserResponse{ID: u.ID, Name: u.Name, Email: u.Email})
	}
}

func signOutHandler(store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ClearSession(store, w, r); err != nil {
			log.ErrorContext(r.Context(), "failed to clear session", "error", err)
		}
		httpx.NoContent(w)
	}
}
