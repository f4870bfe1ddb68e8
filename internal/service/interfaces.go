package service

import (
	"context"

	"github.com/FabricioSoica/Front-MindCase/internal/apiclient"
	"github.com/FabricioSoica/Front-MindCase/internal/domain"
)

// SessionSink receives authentication state to persist. The session package
// provides the real implementation, bound to one request/response pair;
// tests inject fakes.
type SessionSink interface {
	// Save writes a fresh token and profile together.
	Save(token string, user domain.UserProfile) error
	// UpdateUser merges profile fields into the stored session, leaving the
	// token untouched.
	UpdateUser(partial domain.UserProfile) error
}

// ProfileUpdate carries the editable profile fields. Email is deliberately
// absent: it is immutable in the edit flow and never submitted.
type ProfileUpdate struct {
	Name   string
	Avatar *apiclient.Upload
}

// ArticleChange carries the article create/edit fields. FeaturedImage nil
// means a JSON request; non-nil switches the transport to multipart.
type ArticleChange struct {
	Title         string
	Content       string
	FeaturedImage *apiclient.Upload
}

// AuthServiceInterface defines the authentication operations.
// Used for dependency injection and mocking in tests.
type AuthServiceInterface interface {
	// Register creates an account and persists the resulting session.
	Register(ctx context.Context, sink SessionSink, in domain.RegisterInput) (domain.Session, error)
	// Login authenticates and persists the resulting session.
	Login(ctx context.Context, sink SessionSink, in domain.LoginInput) (domain.Session, error)
	// ChangePassword resets the password by email. The session is untouched.
	ChangePassword(ctx context.Context, in domain.ChangePasswordInput) error
	// UpdateProfile edits the profile and merges the refreshed session.
	UpdateProfile(ctx context.Context, sink SessionSink, token string, id int, in ProfileUpdate) (domain.Session, error)
}

// ArticleServiceInterface defines the article operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// List fetches one page of the article feed.
	List(ctx context.Context, token string, page, limit int) (*domain.ArticlePage, error)
	// GetByID fetches a single article; a backend 404 surfaces as an
	// APIError with status 404.
	GetByID(ctx context.Context, token string, id int) (*domain.Article, error)
	// ListByAuthor fetches all articles of one author.
	ListByAuthor(ctx context.Context, token string, authorID int) ([]domain.Article, error)
	// Create publishes a new article.
	Create(ctx context.Context, token string, in ArticleChange) (*domain.Article, error)
	// Update edits an existing article. Ownership is enforced server-side.
	Update(ctx context.Context, token string, id int, in ArticleChange) (*domain.Article, error)
	// Delete removes an article.
	Delete(ctx context.Context, token string, id int) error
}
