package service

import (
	"context"
	"errors"
	"time"

	dom "github.com/RithigaS/BACKEND/internal/domain"
	"github.com/RithigaS/BACKEND/internal/repo"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrBlogNotFound      = errors.New("blog not found")
	ErrMissingBlogFields = errors.New("title, content, author and category are required")
	ErrEmptyComment      = errors.New("comment content is required")
)

// BlogService handles blog CRUD and comment appends.
type BlogService struct {
	repo repo.BlogRepo
}

// NewBlogService returns a new BlogService.
func NewBlogService(r repo.BlogRepo) *BlogService {
	return &BlogService{repo: r}
}

// Create persists a new blog with a server-assigned creation time and an
// empty comments array.
func (s *BlogService) Create(ctx context.Context, title, content, author, category, externalLink string) (dom.Blog, error) {
	if title == "" || content == "" || author == "" || category == "" {
		return dom.Blog{}, ErrMissingBlogFields
	}
	return s.repo.Create(ctx, dom.Blog{
		Title:        title,
		Content:      content,
		Author:       author,
		Category:     category,
		ExternalLink: externalLink,
		CreatedAt:    time.Now().UTC(),
		Comments:     []dom.Comment{},
	})
}

// List returns every blog, unfiltered and unpaginated.
func (s *BlogService) List(ctx context.Context) ([]dom.Blog, error) {
	return s.repo.List(ctx)
}

// Update writes the legacy frontend field set onto the document and returns
// the post-update blog. The keys are disjoint from the blog schema, so the
// real content fields stay untouched; this mirrors the deployed behaviour
// (see DESIGN.md) rather than a guessed intent.
func (s *BlogService) Update(ctx context.Context, id primitive.ObjectID, blogName, theme, information, url string) (dom.Blog, error) {
	b, err := s.repo.SetFields(ctx, id, map[string]any{
		"blogName":    blogName,
		"theme":       theme,
		"information": information,
		"url":         url,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.Blog{}, ErrBlogNotFound
		}
		return dom.Blog{}, err
	}
	return b, nil
}

// Delete removes the blog permanently. Embedded comments go with it.
func (s *BlogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrBlogNotFound
	}
	return err
}

// AddComment appends one comment with a server-assigned creation time and
// returns the updated blog.
func (s *BlogService) AddComment(ctx context.Context, id primitive.ObjectID, content string) (dom.Blog, error) {
	if content == "" {
		return dom.Blog{}, ErrEmptyComment
	}
	b, err := s.repo.PushComment(ctx, id, dom.Comment{
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.Blog{}, ErrBlogNotFound
		}
		return dom.Blog{}, err
	}
	return b, nil
}
