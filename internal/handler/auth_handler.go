package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/FabricioSoica/Front-MindCase/internal/apiclient"
	"github.com/FabricioSoica/Front-MindCase/internal/domain"
	"github.com/FabricioSoica/Front-MindCase/internal/logger"
	"github.com/FabricioSoica/Front-MindCase/internal/middleware"
	"github.com/FabricioSoica/Front-MindCase/internal/service"
	"github.com/FabricioSoica/Front-MindCase/internal/session"
	"github.com/FabricioSoica/Front-MindCase/internal/validator"
)

// AuthHandler handles the login, registration, change-password and logout
// pages.
type AuthHandler struct {
	auth     service.AuthServiceInterface
	sessions *session.Store
	validate *validator.Validator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth service.AuthServiceInterface, sessions *session.Store, validate *validator.Validator) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		validate: validate,
	}
}

type loginPage struct {
	Email string
	Error string
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", loginPage{})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	in := domain.LoginInput{
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
	}

	if err := h.validate.ValidateLogin(in); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", loginPage{Email: in.Email, Error: err.Error()})
		return
	}

	_, err := h.auth.Login(c.Request.Context(), h.sessions.Bind(c.Writer, c.Request), in)
	if err != nil {
		logger.Warn("login failed", slog.String("error", err.Error()))
		c.HTML(httpStatus(err), "login.html", loginPage{
			Email: in.Email,
			Error: apiclient.ErrorMessage(err, "Erro ao fazer login"),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

type registerPage struct {
	Name  string
	Email string
	Error string
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", registerPage{})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	in := domain.RegisterInput{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
	}

	if err := h.validate.ValidateRegister(in); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", registerPage{Name: in.Name, Email: in.Email, Error: err.Error()})
		return
	}

	_, err := h.auth.Register(c.Request.Context(), h.sessions.Bind(c.Writer, c.Request), in)
	if err != nil {
		logger.Warn("registration failed", slog.String("error", err.Error()))
		c.HTML(httpStatus(err), "register.html", registerPage{
			Name:  in.Name,
			Email: in.Email,
			Error: apiclient.ErrorMessage(err, "Erro ao cadastrar"),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

type changePasswordPage struct {
	Email   string
	Error   string
	Success string
}

// ShowChangePassword handles GET /changepassword
func (h *AuthHandler) ShowChangePassword(c *gin.Context) {
	c.HTML(http.StatusOK, "changepassword.html", changePasswordPage{})
}

// ChangePassword handles POST /changepassword. The confirmation check runs
// here, before any backend call.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	confirmation := c.PostForm("confirmPassword")

	if err := h.validate.ValidateChangePassword(email, password, confirmation); err != nil {
		c.HTML(http.StatusBadRequest, "changepassword.html", changePasswordPage{Email: email, Error: err.Error()})
		return
	}

	err := h.auth.ChangePassword(c.Request.Context(), domain.ChangePasswordInput{
		Email:       email,
		NewPassword: password,
	})
	if err != nil {
		logger.Warn("password change failed", slog.String("error", err.Error()))
		c.HTML(httpStatus(err), "changepassword.html", changePasswordPage{
			Email: email,
			Error: apiclient.ErrorMessage(err, "Erro ao alterar a senha"),
		})
		return
	}

	c.HTML(http.StatusOK, "changepassword.html", changePasswordPage{Success: "Senha alterada com sucesso!"})
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c.Writer)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
