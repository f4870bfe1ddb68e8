package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestArticle_JSONShape(t *testing.T) {
	payload := `{
		"id": 7,
		"title": "Hello",
		"content": "World",
		"featuredImage": "/uploads/7.png",
		"createdAt": "2025-01-02T15:04:05Z",
		"updatedAt": "2025-01-03T15:04:05Z",
		"User": {"id": 3, "name": "Ana"}
	}`

	var a Article
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		t.Fatalf("unmarshal article: %v", err)
	}

	if a.ID != 7 {
		t.Errorf("ID = %d, want 7", a.ID)
	}
	if a.Author.ID != 3 || a.Author.Name != "Ana" {
		t.Errorf("Author = %+v, want id=3 name=Ana", a.Author)
	}
	if a.FeaturedImage != "/uploads/7.png" {
		t.Errorf("FeaturedImage = %q", a.FeaturedImage)
	}
	want := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	if !a.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", a.CreatedAt, want)
	}
}

func TestArticlePage_JSONShape(t *testing.T) {
	payload := `{"articles":[{"id":1,"title":"a","content":"b"}],"total":21,"pages":3,"currentPage":2}`

	var p ArticlePage
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unmarshal page: %v", err)
	}

	if len(p.Articles) != 1 {
		t.Fatalf("len(Articles) = %d, want 1", len(p.Articles))
	}
	if p.Total != 21 || p.Pages != 3 || p.CurrentPage != 2 {
		t.Errorf("page meta = %+v", p)
	}
}

func TestSession_LoggedIn(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{"zero value", Session{}, false},
		{"token only", Session{Token: "abc"}, true},
		{"token and user", Session{Token: "abc", User: &UserProfile{ID: 1}}, true},
		{"user without token", Session{User: &UserProfile{ID: 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.LoggedIn(); got != tt.want {
				t.Errorf("LoggedIn() = %v, want %v", got, tt.want)
			}
		})
	}
}
