// Package session persists the browser session: the opaque bearer token and
// a snapshot of the user profile, in two cookies with fixed names. This is
// the server-rendered counterpart of the SPA's localStorage keys.
package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/FabricioSoica/Front-MindCase/internal/domain"
)

const (
	// TokenCookie holds the raw bearer token.
	TokenCookie = "token"
	// UserCookie holds the base64-encoded JSON profile snapshot.
	UserCookie = "user"
)

// Options configures cookie attributes.
type Options struct {
	Secure bool
	MaxAge time.Duration
}

// Store reads and writes the session cookies. It holds no per-request state;
// bind it to a request with Bind.
type Store struct {
	secure bool
	maxAge int
}

// NewStore creates a Store with the given cookie options.
func NewStore(opts Options) *Store {
	maxAge := int(opts.MaxAge.Seconds())
	if maxAge <= 0 {
		maxAge = int((30 * 24 * time.Hour).Seconds())
	}
	return &Store{
		secure: opts.Secure,
		maxAge: maxAge,
	}
}

// Load reads the session from the request cookies. It never fails: a missing
// token means a logged-out session, and a malformed profile record is treated
// as an absent session entirely (fail open to logged-out).
func (s *Store) Load(r *http.Request) domain.Session {
	tokenCookie, err := r.Cookie(TokenCookie)
	if err != nil || tokenCookie.Value == "" {
		return domain.Session{}
	}

	sess := domain.Session{Token: tokenCookie.Value}

	userCookie, err := r.Cookie(UserCookie)
	if err != nil || userCookie.Value == "" {
		return sess
	}

	user, err := decodeUser(userCookie.Value)
	if err != nil {
		// Unparsable persisted state: treat the whole session as absent
		// rather than surfacing the corruption to the user.
		return domain.Session{}
	}

	sess.User = user
	return sess
}

// Save writes the token and profile together. The profile is encoded before
// either cookie is set, so a failure leaves the prior state untouched.
func (s *Store) Save(w http.ResponseWriter, token string, user domain.UserProfile) error {
	encoded, err := encodeUser(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	http.SetCookie(w, s.cookie(TokenCookie, token, s.maxAge))
	http.SetCookie(w, s.cookie(UserCookie, encoded, s.maxAge))
	return nil
}

// Clear expires both cookies.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(TokenCookie, "", -1))
	http.SetCookie(w, s.cookie(UserCookie, "", -1))
}

// UpdateUser merges the non-zero fields of partial into the stored profile.
// A request without a usable session is a no-op.
func (s *Store) UpdateUser(w http.ResponseWriter, r *http.Request, partial domain.UserProfile) error {
	sess := s.Load(r)
	if !sess.LoggedIn() {
		return nil
	}

	merged := domain.UserProfile{}
	if sess.User != nil {
		merged = *sess.User
	}
	if partial.ID != 0 {
		merged.ID = partial.ID
	}
	if partial.Name != "" {
		merged.Name = partial.Name
	}
	if partial.Email != "" {
		merged.Email = partial.Email
	}
	if partial.AvatarURL != "" {
		merged.AvatarURL = partial.AvatarURL
	}

	encoded, err := encodeUser(merged)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	http.SetCookie(w, s.cookie(UserCookie, encoded, s.maxAge))
	return nil
}

func (s *Store) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func encodeUser(user domain.UserProfile) (string, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

func decodeUser(value string) (*domain.UserProfile, error) {
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}
	var user domain.UserProfile
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}
	return &user, nil
}

// Binding is a Store scoped to one request/response pair. It satisfies the
// session sink the services persist through.
type Binding struct {
	store *Store
	w     http.ResponseWriter
	r     *http.Request
}

// Bind scopes the store to a request/response pair.
func (s *Store) Bind(w http.ResponseWriter, r *http.Request) *Binding {
	return &Binding{store: s, w: w, r: r}
}

// Session loads the current session.
func (b *Binding) Session() domain.Session {
	return b.store.Load(b.r)
}

// Save persists a new token and profile.
func (b *Binding) Save(token string, user domain.UserProfile) error {
	return b.store.Save(b.w, token, user)
}

// Clear drops the session.
func (b *Binding) Clear() {
	b.store.Clear(b.w)
}

// UpdateUser merges fields into the stored profile.
func (b *Binding) UpdateUser(partial domain.UserProfile) error {
	return b.store.UpdateUser(b.w, b.r, partial)
}
