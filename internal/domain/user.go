package domain

// UserProfile represents the authenticated user's profile as returned by the
// backend. ID is server-assigned and never changes; Email is treated as
// immutable by the profile edit flow.
type UserProfile struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// AuthResponse is the payload returned by register, login and profile update.
type AuthResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordInput carries the change-password request. The confirmation
// field never leaves the client; it is checked before this struct is built.
type ChangePasswordInput struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}
