package domain

import "time"

// Author is the article owner as embedded in article payloads. The backend
// serializes it under the "User" key.
type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Article represents an article as returned by the backend. FeaturedImage is
// a server-relative path resolved against the asset origin when rendered.
type Article struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Author        Author    `json:"User"`
}

// ArticlePage is one page of the article feed, in the backend's order
// (newest first).
type ArticlePage struct {
	Articles    []Article `json:"articles"`
	Total       int       `json:"total"`
	Pages       int       `json:"pages"`
	CurrentPage int       `json:"currentPage"`
}

// ArticleInput carries the create/edit article form fields. Image bytes
// travel separately so the transport can pick JSON or multipart.
type ArticleInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
