package domain

// Session is the client-held authentication state: an opaque bearer token and
// a snapshot of the user profile. The zero value is the logged-out state.
type Session struct {
	Token string
	User  *UserProfile
}

// LoggedIn reports whether the session holds a token. Presence only; the
// token may have expired server-side and is still treated as valid here.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}
