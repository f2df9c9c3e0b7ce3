package dto

import (
	"time"

	dom "github.com/RithigaS/BACKEND/internal/domain"
)

// CreateBlogRequest is the JSON body for POST /blogs/create.
type CreateBlogRequest struct {
	Title        string `json:"title" binding:"required"`
	Content      string `json:"content" binding:"required"`
	Author       string `json:"author" binding:"required"`
	Category     string `json:"category" binding:"required"`
	ExternalLink string `json:"externalLink"`
}

// UpdateBlogRequest is the JSON body for PUT /update-blog/:id.
// The field set is the one the frontend actually sends; it is disjoint from
// the blog schema and the update writes these keys as-is (see DESIGN.md).
type UpdateBlogRequest struct {
	BlogName    string `json:"blogName"`
	Theme       string `json:"theme"`
	Information string `json:"information"`
	URL         string `json:"url"`
}

// AddCommentRequest is the JSON body for POST /blogs/comment/:id.
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentResponse struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type BlogResponse struct {
	ID           string            `json:"_id"`
	Title        string            `json:"title"`
	Content      string            `json:"content"`
	Author       string            `json:"author"`
	Category     string            `json:"category"`
	ExternalLink string            `json:"externalLink,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	Comments     []CommentResponse `json:"comments"`
}

type ListBlogsResponse struct {
	Blogs []BlogResponse `json:"blogs"`
}

// BlogToResponse maps a domain blog to its wire shape. Comments always
// serialize as an array, never null.
func BlogToResponse(b dom.Blog) BlogResponse {
	comments := make([]CommentResponse, len(b.Comments))
	for i, c := range b.Comments {
		comments[i] = CommentResponse{Content: c.Content, CreatedAt: c.CreatedAt}
	}
	return BlogResponse{
		ID:           b.ID.Hex(),
		Title:        b.Title,
		Content:      b.Content,
		Author:       b.Author,
		Category:     b.Category,
		ExternalLink: b.ExternalLink,
		CreatedAt:    b.CreatedAt,
		Comments:     comments,
	}
}

func BlogsToResponses(list []dom.Blog) []BlogResponse {
	out := make([]BlogResponse, len(list))
	for i := range list {
		out[i] = BlogToResponse(list[i])
	}
	return out
}
