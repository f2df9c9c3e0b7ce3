package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dom "github.com/RithigaS/BACKEND/internal/domain"
	"github.com/RithigaS/BACKEND/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repo fakes with the Mongo repos' error contract.

type fakeUserRepo struct {
	users map[string]dom.User
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	u, ok := r.users[username]
	if !ok {
		return dom.User{}, mongo.ErrNoDocuments
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	u.ID = primitive.NewObjectID()
	r.users[u.Username] = u
	return u, nil
}

func (r *fakeUserRepo) UpdatePortfolio(_ context.Context, username, portfolio string) (dom.User, error) {
	u, ok := r.users[username]
	if !ok {
		return dom.User{}, mongo.ErrNoDocuments
	}
	u.Portfolio = portfolio
	r.users[username] = u
	return u, nil
}

type fakeBlogRepo struct {
	blogs []dom.Blog
}

func (r *fakeBlogRepo) Create(_ context.Context, b dom.Blog) (dom.Blog, error) {
	b.ID = primitive.NewObjectID()
	r.blogs = append(r.blogs, b)
	return b, nil
}

func (r *fakeBlogRepo) List(_ context.Context) ([]dom.Blog, error) {
	out := make([]dom.Blog, len(r.blogs))
	copy(out, r.blogs)
	return out, nil
}

func (r *fakeBlogRepo) SetFields(_ context.Context, id primitive.ObjectID, _ map[string]any) (dom.Blog, error) {
	i := r.index(id)
	if i < 0 {
		return dom.Blog{}, mongo.ErrNoDocuments
	}
	// Legacy keys land outside the Blog shape; the decoded document is
	// unchanged.
	return r.blogs[i], nil
}

func (r *fakeBlogRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	i := r.index(id)
	if i < 0 {
		return mongo.ErrNoDocuments
	}
	r.blogs = append(r.blogs[:i], r.blogs[i+1:]...)
	return nil
}

func (r *fakeBlogRepo) PushComment(_ context.Context, id primitive.ObjectID, c dom.Comment) (dom.Blog, error) {
	i := r.index(id)
	if i < 0 {
		return dom.Blog{}, mongo.ErrNoDocuments
	}
	r.blogs[i].Comments = append(r.blogs[i].Comments, c)
	return r.blogs[i], nil
}

func (r *fakeBlogRepo) CountByAuthor(_ context.Context, author string) (int64, error) {
	var n int64
	for _, b := range r.blogs {
		if b.Author == author {
			n++
		}
	}
	return n, nil
}

func (r *fakeBlogRepo) index(id primitive.ObjectID) int {
	for i, b := range r.blogs {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	users := &fakeUserRepo{users: map[string]dom.User{}}
	blogs := &fakeBlogRepo{}
	userHandler := NewUserHandler(service.NewUserService(users, blogs))
	blogHandler := NewBlogHandler(service.NewBlogService(blogs))

	r := gin.New()
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/profile", userHandler.GetProfile)
	r.PUT("/profile", userHandler.UpdateProfile)
	r.POST("/blogs/create", blogHandler.Create)
	r.GET("/blogs", blogHandler.List)
	r.PUT("/update-blog/:id", blogHandler.Update)
	r.DELETE("/delete-blog/:id", blogHandler.Delete)
	r.POST("/blogs/comment/:id", blogHandler.AddComment)
	return r
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func registerUser(t *testing.T, r *gin.Engine, username, password string) {
	t.Helper()
	w := performRequest(t, r, http.MethodPost, "/register", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)
}
