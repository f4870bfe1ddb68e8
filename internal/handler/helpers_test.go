package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/FabricioSoica/Front-MindCase/internal/domain"
	"github.com/FabricioSoica/Front-MindCase/internal/middleware"
	"github.com/FabricioSoica/Front-MindCase/internal/service"
	"github.com/FabricioSoica/Front-MindCase/internal/session"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := NewTemplates("http://backend.local")
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	return router
}

func testStore() *session.Store {
	return session.NewStore(session.Options{MaxAge: time.Hour})
}

// withSession plants a session in the gin context the way RequireSession
// does, without going through cookies.
func withSession(sess domain.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionKey, sess)
		c.Next()
	}
}

func testUser() domain.UserProfile {
	return domain.UserProfile{ID: 7, Name: "Ana Silva", Email: "ana@example.com"}
}

func loggedInSession() domain.Session {
	user := testUser()
	return domain.Session{Token: "tok-123", User: &user}
}

// fakeAuthService implements service.AuthServiceInterface with overridable
// behavior per call.
type fakeAuthService struct {
	loginFn          func(ctx context.Context, sink service.SessionSink, in domain.LoginInput) (domain.Session, error)
	registerFn       func(ctx context.Context, sink service.SessionSink, in domain.RegisterInput) (domain.Session, error)
	changePasswordFn func(ctx context.Context, in domain.ChangePasswordInput) error
	updateProfileFn  func(ctx context.Context, sink service.SessionSink, token string, id int, in service.ProfileUpdate) (domain.Session, error)

	loginCalls          int
	registerCalls       int
	changePasswordCalls int
	updateProfileCalls  int
}

func (f *fakeAuthService) Login(ctx context.Context, sink service.SessionSink, in domain.LoginInput) (domain.Session, error) {
	f.loginCalls++
	return f.loginFn(ctx, sink, in)
}

func (f *fakeAuthService) Register(ctx context.Context, sink service.SessionSink, in domain.RegisterInput) (domain.Session, error) {
	f.registerCalls++
	return f.registerFn(ctx, sink, in)
}

func (f *fakeAuthService) ChangePassword(ctx context.Context, in domain.ChangePasswordInput) error {
	f.changePasswordCalls++
	return f.changePasswordFn(ctx, in)
}

func (f *fakeAuthService) UpdateProfile(ctx context.Context, sink service.SessionSink, token string, id int, in service.ProfileUpdate) (domain.Session, error) {
	f.updateProfileCalls++
	return f.updateProfileFn(ctx, sink, token, id, in)
}

// fakeArticleService implements service.ArticleServiceInterface.
type fakeArticleService struct {
	listFn         func(ctx context.Context, token string, page, limit int) (*domain.ArticlePage, error)
	getByIDFn      func(ctx context.Context, token string, id int) (*domain.Article, error)
	listByAuthorFn func(ctx context.Context, token string, authorID int) ([]domain.Article, error)
	createFn       func(ctx context.Context, token string, in service.ArticleChange) (*domain.Article, error)
	updateFn       func(ctx context.Context, token string, id int, in service.ArticleChange) (*domain.Article, error)
	deleteFn       func(ctx context.Context, token string, id int) error

	createCalls int
}

func (f *fakeArticleService) List(ctx context.Context, token string, page, limit int) (*domain.ArticlePage, error) {
	return f.listFn(ctx, token, page, limit)
}

func (f *fakeArticleService) GetByID(ctx context.Context, token string, id int) (*domain.Article, error) {
	return f.getByIDFn(ctx, token, id)
}

func (f *fakeArticleService) ListByAuthor(ctx context.Context, token string, authorID int) ([]domain.Article, error) {
	return f.listByAuthorFn(ctx, token, authorID)
}

func (f *fakeArticleService) Create(ctx context.Context, token string, in service.ArticleChange) (*domain.Article, error) {
	f.createCalls++
	return f.createFn(ctx, token, in)
}

func (f *fakeArticleService) Update(ctx context.Context, token string, id int, in service.ArticleChange) (*domain.Article, error) {
	return f.updateFn(ctx, token, id, in)
}

func (f *fakeArticleService) Delete(ctx context.Context, token string, id int) error {
	return f.deleteFn(ctx, token, id)
}

func postForm(router *gin.Engine, path string, form map[string]string) *httptest.ResponseRecorder {
	values := url.Values{}
	for key, value := range form {
		values.Set(key, value)
	}

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postMultipart(t *testing.T, router *gin.Engine, path string, fields map[string]string, fileField, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func readUpload(t *testing.T, upload io.Reader) []byte {
	t.Helper()
	data, err := io.ReadAll(upload)
	require.NoError(t, err)
	return data
}
