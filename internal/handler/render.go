package handler

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FabricioSoica/Front-MindCase/internal/apiclient"
	"github.com/FabricioSoica/Front-MindCase/internal/domain"
	"github.com/FabricioSoica/Front-MindCase/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

var ptBRMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDatePTBR renders a timestamp the way the pages show it,
// e.g. "2 de janeiro de 2025".
func FormatDatePTBR(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), ptBRMonths[t.Month()-1], t.Year())
}

// NewTemplates parses the embedded page templates. assetBaseURL is the
// backend origin that server-relative image paths resolve against.
func NewTemplates(assetBaseURL string) (*template.Template, error) {
	base := strings.TrimRight(assetBaseURL, "/")
	funcs := template.FuncMap{
		"assetURL": func(path string) string {
			if path == "" {
				return ""
			}
			if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
				return path
			}
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}
			return base + path
		},
		"formatDate": FormatDatePTBR,
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// basePage carries the fields every template needs for the navigation bar.
type basePage struct {
	Session domain.Session
}

func pageFor(c *gin.Context) basePage {
	return basePage{Session: middleware.CurrentSession(c)}
}

type errorPage struct {
	basePage
	Message string
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", errorPage{basePage: pageFor(c), Message: message})
}

// httpStatus maps a service failure to the status of the page rendered for
// it. Client-visible backend failures keep their status; upstream trouble is
// a bad gateway from this front-end's point of view.
func httpStatus(err error) int {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			return apiErr.Status
		}
		return http.StatusBadGateway
	}
	var netErr *apiclient.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
