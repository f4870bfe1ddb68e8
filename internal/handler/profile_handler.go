package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/FabricioSoica/Front-MindCase/internal/apiclient"
	"github.com/FabricioSoica/Front-MindCase/internal/logger"
	"github.com/FabricioSoica/Front-MindCase/internal/middleware"
	"github.com/FabricioSoica/Front-MindCase/internal/service"
	"github.com/FabricioSoica/Front-MindCase/internal/session"
	"github.com/FabricioSoica/Front-MindCase/internal/validator"
)

// ProfileHandler handles the profile edit page. The email field renders
// read-only and is never submitted to the backend.
type ProfileHandler struct {
	auth     service.AuthServiceInterface
	sessions *session.Store
	validate *validator.Validator
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(auth service.AuthServiceInterface, sessions *session.Store, validate *validator.Validator) *ProfileHandler {
	return &ProfileHandler{
		auth:     auth,
		sessions: sessions,
		validate: validate,
	}
}

type profilePage struct {
	basePage
	UserID    int
	Name      string
	Email     string
	AvatarURL string
	Error     string
}

// ShowProfile handles GET /user/:id
func (h *ProfileHandler) ShowProfile(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusBadRequest, err.Error())
		return
	}

	sess := middleware.CurrentSession(c)
	if sess.User == nil {
		c.Redirect(http.StatusSeeOther, middleware.LoginPath)
		return
	}

	c.HTML(http.StatusOK, "profile.html", profilePage{
		basePage:  pageFor(c),
		UserID:    id,
		Name:      sess.User.Name,
		Email:     sess.User.Email,
		AvatarURL: sess.User.AvatarURL,
	})
}

// UpdateProfile handles POST /user/:id
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusBadRequest, err.Error())
		return
	}

	sess := middleware.CurrentSession(c)
	if sess.User == nil {
		c.Redirect(http.StatusSeeOther, middleware.LoginPath)
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))

	form := profilePage{
		basePage:  pageFor(c),
		UserID:    id,
		Name:      name,
		Email:     sess.User.Email,
		AvatarURL: sess.User.AvatarURL,
	}

	if err := h.validate.ValidateProfileName(name); err != nil {
		form.Error = err.Error()
		c.HTML(http.StatusBadRequest, "profile.html", form)
		return
	}

	avatar, closeAvatar, err := formUpload(c, "avatar")
	if err != nil {
		form.Error = "Erro ao ler o avatar enviado"
		c.HTML(http.StatusBadRequest, "profile.html", form)
		return
	}
	defer closeAvatar()

	_, err = h.auth.UpdateProfile(c.Request.Context(), h.sessions.Bind(c.Writer, c.Request), sess.Token, id, service.ProfileUpdate{
		Name:   name,
		Avatar: avatar,
	})
	if err != nil {
		logger.Error("profile update failed", slog.Int("user_id", id), slog.String("error", err.Error()))
		form.Error = apiclient.ErrorMessage(err, "Erro ao atualizar perfil")
		c.HTML(httpStatus(err), "profile.html", form)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/user/%d", id))
}
