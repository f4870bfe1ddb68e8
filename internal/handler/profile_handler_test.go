package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabricioSoica/Front-MindCase/internal/apiclient"
	"github.com/FabricioSoica/Front-MindCase/internal/domain"
	"github.com/FabricioSoica/Front-MindCase/internal/service"
	"github.com/FabricioSoica/Front-MindCase/internal/validator"
)

func newProfileRouter(t *testing.T, auth *fakeAuthService, sess domain.Session) *gin.Engine {
	t.Helper()
	router := newTestRouter(t)
	router.Use(withSession(sess))

	h := NewProfileHandler(auth, testStore(), validator.NewValidator())
	router.GET("/user/:id", h.ShowProfile)
	router.POST("/user/:id", h.UpdateProfile)
	return router
}

func TestProfileHandler_ShowProfile(t *testing.T) {
	t.Run("renders the session profile with a read-only email", func(t *testing.T) {
		router := newProfileRouter(t, &fakeAuthService{}, loggedInSession())

		w := get(router, "/user/7")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Ana Silva")
		assert.Contains(t, body, "ana@example.com")
		assert.Contains(t, body, "readonly")
	})

	t.Run("non-numeric id is rejected", func(t *testing.T) {
		router := newProfileRouter(t, &fakeAuthService{}, loggedInSession())

		w := get(router, "/user/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), validator.MsgInvalidID)
	})
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	t.Run("name-only update stays JSON and redirects back", func(t *testing.T) {
		auth := &fakeAuthService{
			updateProfileFn: func(ctx context.Context, sink service.SessionSink, token string, id int, in service.ProfileUpdate) (domain.Session, error) {
				require.Equal(t, "tok-123", token)
				require.Equal(t, 7, id)
				require.Equal(t, "Ana Souza", in.Name)
				require.Nil(t, in.Avatar)
				user := domain.UserProfile{ID: 7, Name: "Ana Souza", Email: "ana@example.com"}
				return domain.Session{Token: token, User: &user}, nil
			},
		}
		router := newProfileRouter(t, auth, loggedInSession())

		w := postForm(router, "/user/7", map[string]string{"name": "Ana Souza"})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/user/7", w.Header().Get("Location"))
		assert.Equal(t, 1, auth.updateProfileCalls)
	})

	t.Run("attached avatar switches the update to an upload", func(t *testing.T) {
		auth := &fakeAuthService{
			updateProfileFn: func(ctx context.Context, sink service.SessionSink, token string, id int, in service.ProfileUpdate) (domain.Session, error) {
				require.NotNil(t, in.Avatar)
				require.Equal(t, "avatar", in.Avatar.Field)
				require.Equal(t, "foto.jpg", in.Avatar.Filename)
				require.Equal(t, []byte("jpg-bytes"), readUpload(t, in.Avatar.Reader))
				user := testUser()
				return domain.Session{Token: token, User: &user}, nil
			},
		}
		router := newProfileRouter(t, auth, loggedInSession())

		w := postMultipart(t, router, "/user/7", map[string]string{"name": "Ana Silva"},
			"avatar", "foto.jpg", []byte("jpg-bytes"))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/user/7", w.Header().Get("Location"))
	})

	t.Run("blank name re-renders the form without calling the service", func(t *testing.T) {
		auth := &fakeAuthService{}
		router := newProfileRouter(t, auth, loggedInSession())

		w := postForm(router, "/user/7", map[string]string{"name": "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), validator.MsgRequired)
		assert.Zero(t, auth.updateProfileCalls)
	})

	t.Run("backend rejection keeps the form with its message", func(t *testing.T) {
		auth := &fakeAuthService{
			updateProfileFn: func(ctx context.Context, sink service.SessionSink, token string, id int, in service.ProfileUpdate) (domain.Session, error) {
				return domain.Session{}, &apiclient.APIError{Status: http.StatusForbidden, Message: "Sem permissão"}
			},
		}
		router := newProfileRouter(t, auth, loggedInSession())

		w := postForm(router, "/user/7", map[string]string{"name": "Ana Souza"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Sem permissão")
		assert.Contains(t, w.Body.String(), "Ana Souza")
	})
}
