package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/FabricioSoica/Front-MindCase/internal/apiclient"
	"github.com/FabricioSoica/Front-MindCase/internal/domain"
)

// ArticleService performs the article operations against the backend. It
// holds no cache; every call re-fetches.
type ArticleService struct {
	api *apiclient.Client
}

// NewArticleService creates a new ArticleService.
func NewArticleService(api *apiclient.Client) *ArticleService {
	return &ArticleService{api: api}
}

// List fetches one feed page via GET /articles?page&limit. The token rides
// along whenever the caller holds one.
func (s *ArticleService) List(ctx context.Context, token string, page, limit int) (*domain.ArticlePage, error) {
	query := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}

	var result domain.ArticlePage
	if err := s.api.Get(ctx, token, "/articles", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByID fetches a single article via GET /articles/:id.
func (s *ArticleService) GetByID(ctx context.Context, token string, id int) (*domain.Article, error) {
	var article domain.Article
	if err := s.api.Get(ctx, token, fmt.Sprintf("/articles/%d", id), nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// ListByAuthor fetches all articles of one author via GET /articles/author/:id.
func (s *ArticleService) ListByAuthor(ctx context.Context, token string, authorID int) ([]domain.Article, error) {
	var articles []domain.Article
	if err := s.api.Get(ctx, token, fmt.Sprintf("/articles/author/%d", authorID), nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Create publishes an article via POST /articles. Multipart exactly when an
// image is attached, JSON otherwise. The token is attached as-is; a missing
// or stale one is rejected server-side.
func (s *ArticleService) Create(ctx context.Context, token string, in ArticleChange) (*domain.Article, error) {
	var article domain.Article
	var err error
	if in.FeaturedImage != nil {
		fields := map[string]string{"title": in.Title, "content": in.Content}
		err = s.api.PostForm(ctx, token, "/articles", fields, in.FeaturedImage, &article)
	} else {
		err = s.api.PostJSON(ctx, token, "/articles", domain.ArticleInput{Title: in.Title, Content: in.Content}, &article)
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Update edits an article via PUT /articles/:id, with the same content-type
// branching as Create. Only the owning author succeeds (server-enforced).
func (s *ArticleService) Update(ctx context.Context, token string, id int, in ArticleChange) (*domain.Article, error) {
	path := fmt.Sprintf("/articles/%d", id)

	var article domain.Article
	var err error
	if in.FeaturedImage != nil {
		fields := map[string]string{"title": in.Title, "content": in.Content}
		err = s.api.PutForm(ctx, token, path, fields, in.FeaturedImage, &article)
	} else {
		err = s.api.PutJSON(ctx, token, path, domain.ArticleInput{Title: in.Title, Content: in.Content}, &article)
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Delete removes an article via DELETE /articles/:id.
func (s *ArticleService) Delete(ctx context.Context, token string, id int) error {
	return s.api.Delete(ctx, token, fmt.Sprintf("/articles/%d", id))
}
