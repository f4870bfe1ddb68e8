package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/FabricioSoica/Front-MindCase/internal/apiclient"
	"github.com/FabricioSoica/Front-MindCase/internal/domain"
	"github.com/FabricioSoica/Front-MindCase/internal/logger"
	"github.com/FabricioSoica/Front-MindCase/internal/middleware"
	"github.com/FabricioSoica/Front-MindCase/internal/service"
	"github.com/FabricioSoica/Front-MindCase/internal/validator"
)

// ArticleHandler handles the feed, article detail, my-articles and article
// create/edit/delete pages.
type ArticleHandler struct {
	articles service.ArticleServiceInterface
	validate *validator.Validator
	pageSize int
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles service.ArticleServiceInterface, validate *validator.Validator, pageSize int) *ArticleHandler {
	return &ArticleHandler{
		articles: articles,
		validate: validate,
		pageSize: pageSize,
	}
}

type feedPage struct {
	basePage
	Page     *domain.ArticlePage
	PrevPage int
	NextPage int
}

// Feed handles GET /?page=
func (h *ArticleHandler) Feed(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	sess := middleware.CurrentSession(c)
	result, err := h.articles.List(c.Request.Context(), sess.Token, page, h.pageSize)
	if err != nil {
		logger.Error("feed fetch failed", slog.String("error", err.Error()))
		renderError(c, httpStatus(err), apiclient.ErrorMessage(err, "Erro ao buscar artigos"))
		return
	}

	c.HTML(http.StatusOK, "feed.html", feedPage{
		basePage: pageFor(c),
		Page:     result,
		PrevPage: result.CurrentPage - 1,
		NextPage: result.CurrentPage + 1,
	})
}

type articlePage struct {
	basePage
	Article *domain.Article
}

// ShowArticle handles GET /article/:id
func (h *ArticleHandler) ShowArticle(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusBadRequest, err.Error())
		return
	}

	sess := middleware.CurrentSession(c)
	article, err := h.articles.GetByID(c.Request.Context(), sess.Token, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			renderError(c, http.StatusNotFound, "Artigo não encontrado.")
			return
		}
		logger.Error("article fetch failed", slog.Int("article_id", id), slog.String("error", err.Error()))
		renderError(c, httpStatus(err), apiclient.ErrorMessage(err, "Erro ao carregar artigo"))
		return
	}

	c.HTML(http.StatusOK, "article.html", articlePage{basePage: pageFor(c), Article: article})
}

type articleFormPage struct {
	basePage
	Heading       string
	Action        string
	Title         string
	Content       string
	FeaturedImage string
	Error         string
}

// ShowNewArticle handles GET /article/new
func (h *ArticleHandler) ShowNewArticle(c *gin.Context) {
	c.HTML(http.StatusOK, "article_form.html", articleFormPage{
		basePage: pageFor(c),
		Heading:  "Novo artigo",
		Action:   "/article/new",
	})
}

// CreateArticle handles POST /article/new
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	in := domain.ArticleInput{
		Title:   strings.TrimSpace(c.PostForm("title")),
		Content: c.PostForm("content"),
	}

	form := articleFormPage{
		basePage: pageFor(c),
		Heading:  "Novo artigo",
		Action:   "/article/new",
		Title:    in.Title,
		Content:  in.Content,
	}

	if err := h.validate.ValidateArticleForm(in); err != nil {
		form.Error = err.Error()
		c.HTML(http.StatusBadRequest, "article_form.html", form)
		return
	}

	upload, closeUpload, err := formUpload(c, "featuredImage")
	if err != nil {
		form.Error = "Erro ao ler a imagem enviada"
		c.HTML(http.StatusBadRequest, "article_form.html", form)
		return
	}
	defer closeUpload()

	sess := middleware.CurrentSession(c)
	article, err := h.articles.Create(c.Request.Context(), sess.Token, service.ArticleChange{
		Title:         in.Title,
		Content:       in.Content,
		FeaturedImage: upload,
	})
	if err != nil {
		logger.Error("article create failed", slog.String("error", err.Error()))
		form.Error = apiclient.ErrorMessage(err, "Erro ao criar artigo")
		c.HTML(httpStatus(err), "article_form.html", form)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/article/%d", article.ID))
}

// ShowEditArticle handles GET /article/:id/edit
func (h *ArticleHandler) ShowEditArticle(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusBadRequest, err.Error())
		return
	}

	sess := middleware.CurrentSession(c)
	article, err := h.articles.GetByID(c.Request.Context(), sess.Token, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			renderError(c, http.StatusNotFound, "Artigo não encontrado.")
			return
		}
		renderError(c, httpStatus(err), apiclient.ErrorMessage(err, "Erro ao carregar artigo"))
		return
	}

	c.HTML(http.StatusOK, "article_form.html", articleFormPage{
		basePage:      pageFor(c),
		Heading:       "Editar artigo",
		Action:        fmt.Sprintf("/article/%d/edit", id),
		Title:         article.Title,
		Content:       article.Content,
		FeaturedImage: article.FeaturedImage,
	})
}

// UpdateArticle handles POST /article/:id/edit
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusBadRequest, err.Error())
		return
	}

	in := domain.ArticleInput{
		Title:   strings.TrimSpace(c.PostForm("title")),
		Content: c.PostForm("content"),
	}

	form := articleFormPage{
		basePage: pageFor(c),
		Heading:  "Editar artigo",
		Action:   fmt.Sprintf("/article/%d/edit", id),
		Title:    in.Title,
		Content:  in.Content,
	}

	if err := h.validate.ValidateArticleForm(in); err != nil {
		form.Error = err.Error()
		c.HTML(http.StatusBadRequest, "article_form.html", form)
		return
	}

	upload, closeUpload, err := formUpload(c, "featuredImage")
	if err != nil {
		form.Error = "Erro ao ler a imagem enviada"
		c.HTML(http.StatusBadRequest, "article_form.html", form)
		return
	}
	defer closeUpload()

	sess := middleware.CurrentSession(c)
	article, err := h.articles.Update(c.Request.Context(), sess.Token, id, service.ArticleChange{
		Title:         in.Title,
		Content:       in.Content,
		FeaturedImage: upload,
	})
	if err != nil {
		logger.Error("article update failed", slog.Int("article_id", id), slog.String("error", err.Error()))
		form.Error = apiclient.ErrorMessage(err, "Erro ao atualizar artigo")
		c.HTML(httpStatus(err), "article_form.html", form)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/article/%d", article.ID))
}

type myArticlesPage struct {
	basePage
	Articles []domain.Article
}

// MyArticles handles GET /my-articles. It needs the profile snapshot for the
// author ID; a token-only session goes back through login.
func (h *ArticleHandler) MyArticles(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess.User == nil {
		c.Redirect(http.StatusSeeOther, middleware.LoginPath)
		return
	}

	articles, err := h.articles.ListByAuthor(c.Request.Context(), sess.Token, sess.User.ID)
	if err != nil {
		logger.Error("my-articles fetch failed", slog.Int("author_id", sess.User.ID), slog.String("error", err.Error()))
		renderError(c, httpStatus(err), apiclient.ErrorMessage(err, "Erro ao buscar artigos"))
		return
	}

	c.HTML(http.StatusOK, "my_articles.html", myArticlesPage{basePage: pageFor(c), Articles: articles})
}

// DeleteArticle handles POST /article/:id/delete
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusBadRequest, err.Error())
		return
	}

	sess := middleware.CurrentSession(c)
	if err := h.articles.Delete(c.Request.Context(), sess.Token, id); err != nil {
		logger.Error("article delete failed", slog.Int("article_id", id), slog.String("error", err.Error()))
		renderError(c, httpStatus(err), apiclient.ErrorMessage(err, "Erro ao excluir artigo"))
		return
	}

	c.Redirect(http.StatusSeeOther, "/my-articles")
}

// formUpload reads an optional file field from a multipart form. A missing
// file is not an error; the caller gets a nil upload and the request stays
// JSON-encoded.
func formUpload(c *gin.Context, field string) (*apiclient.Upload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, fmt.Errorf("open uploaded file: %w", err)
	}

	return &apiclient.Upload{
		Field:    field,
		Filename: header.Filename,
		Reader:   file,
	}, func() { file.Close() }, nil
}
