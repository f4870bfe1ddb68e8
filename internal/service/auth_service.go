package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FabricioSoica/Front-MindCase/internal/apiclient"
	"github.com/FabricioSoica/Front-MindCase/internal/domain"
	"github.com/FabricioSoica/Front-MindCase/internal/logger"
)

// AuthService performs the authentication operations against the backend and
// persists successful results through the given session sink. Failures
// surface unchanged; there is no retry and no automatic logout.
type AuthService struct {
	api *apiclient.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(api *apiclient.Client) *AuthService {
	return &AuthService{api: api}
}

// Register creates an account via POST /users/register and persists the
// returned session. Conflicts (duplicate email) pass through as APIErrors
// with the backend's message.
func (s *AuthService) Register(ctx context.Context, sink SessionSink, in domain.RegisterInput) (domain.Session, error) {
	var resp domain.AuthResponse
	if err := s.api.PostJSON(ctx, "", "/users/register", in, &resp); err != nil {
		return domain.Session{}, err
	}

	if err := sink.Save(resp.Token, resp.User); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}

	logger.InfoContext(ctx, "user registered", slog.Int("user_id", resp.User.ID))
	return domain.Session{Token: resp.Token, User: &resp.User}, nil
}

// Login authenticates via POST /users/login and persists the returned session.
func (s *AuthService) Login(ctx context.Context, sink SessionSink, in domain.LoginInput) (domain.Session, error) {
	var resp domain.AuthResponse
	if err := s.api.PostJSON(ctx, "", "/users/login", in, &resp); err != nil {
		return domain.Session{}, err
	}

	if err := sink.Save(resp.Token, resp.User); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}

	logger.InfoContext(ctx, "user logged in", slog.Int("user_id", resp.User.ID))
	return domain.Session{Token: resp.Token, User: &resp.User}, nil
}

// ChangePassword resets the password via POST /users/change-password. The
// password/confirmation equality check happens before this is invoked; the
// service does not re-validate it. The session is not altered.
func (s *AuthService) ChangePassword(ctx context.Context, in domain.ChangePasswordInput) error {
	return s.api.PostJSON(ctx, "", "/users/change-password", in, nil)
}

// updateProfileBody is the JSON body for an avatar-less profile edit.
// Email is never part of it.
type updateProfileBody struct {
	Name string `json:"name"`
}

// UpdateProfile edits the profile via PUT /users/:id, as multipart when an
// avatar file is attached and JSON otherwise, then merges the returned user
// and refreshed token into the session.
func (s *AuthService) UpdateProfile(ctx context.Context, sink SessionSink, token string, id int, in ProfileUpdate) (domain.Session, error) {
	path := fmt.Sprintf("/users/%d", id)

	var resp domain.AuthResponse
	var err error
	if in.Avatar != nil {
		fields := map[string]string{"name": in.Name}
		err = s.api.PutForm(ctx, token, path, fields, in.Avatar, &resp)
	} else {
		err = s.api.PutJSON(ctx, token, path, updateProfileBody{Name: in.Name}, &resp)
	}
	if err != nil {
		return domain.Session{}, err
	}

	// Some backend versions refresh the token on profile update. With a new
	// token the whole session is rewritten; otherwise only the profile
	// fields are merged into the stored session.
	if resp.Token != "" && resp.Token != token {
		if err := sink.Save(resp.Token, resp.User); err != nil {
			return domain.Session{}, fmt.Errorf("persist session: %w", err)
		}
	} else {
		resp.Token = token
		if err := sink.UpdateUser(resp.User); err != nil {
			return domain.Session{}, fmt.Errorf("persist session: %w", err)
		}
	}

	logger.InfoContext(ctx, "profile updated", slog.Int("user_id", resp.User.ID))
	return domain.Session{Token: resp.Token, User: &resp.User}, nil
}
