package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Registry errors.
var (
	// ErrInvalidCredentials indicates the email/password pair did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates a sign-up attempt with an already-registered email.
	ErrEmailTaken = errors.New("email already registered")
)

// User is a registered account. Passwords are held only as SHA-256 digests;
// this registry is demo-grade and never leaves process memory.
type User struct {
	ID    string
	Name  string
	Email string

	passwordDigest [sha256.Size]byte
}

// Registry is an in-memory user store for the single-tenant demo.
// Mutations are mutex-serialized like the inventory store.
type Registry struct {
	mu    sync.RWMutex
	users []User
}

// NewRegistry returns a Registry seeded with the demo manager account
// (manager@pizzashop.com / password123).
func NewRegistry() *Registry {
	r := &Registry{}
	r.users = append(r.users, User{
		ID:             "user-1",
		Name:           "Joe Manager",
		Email:          "manager@pizzashop.com",
		passwordDigest: sha256.Sum256([]byte("password123")),
	})
	return r
}

// SignIn returns the user matching the email/password pair, or
// ErrInvalidCredentials. Email matching is case-insensitive; the password
// comparison is constant-time.
func (r *Registry) SignIn(email, password string) (User, error) {
	email = normalizeEmail(email)
	digest := sha256.Sum256([]byte(password))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if normalizeEmail(u.Email) != email {
			continue
		}
		if subtle.ConstantTimeCompare(u.passwordDigest[:], digest[:]) == 1 {
			return u, nil
		}
		return User{}, ErrInvalidCredentials
	}
	return User{}, ErrInvalidCredentials
}

// SignUp registers a new account and returns it. Fails with ErrEmailTaken
// when the email is already registered.
func (r *Registry) SignUp(name, email, password string) (User, error) {
	email = strings.TrimSpace(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if normalizeEmail(u.Email) == normalizeEmail(email) {
			return User{}, ErrEmailTaken
		}
	}

	u := User{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		passwordDigest: sha256.Sum256([]byte(password)),
	}
	r.users = append(r.users, u)
	return u, nil
}

// Get returns the user with the given ID, or false.
func (r *Registry) Get(id string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
