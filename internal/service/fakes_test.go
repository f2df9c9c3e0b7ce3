package service

import (
	"context"

	dom "github.com/RithigaS/BACKEND/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repo fakes. They honour the same error contract as the Mongo
// implementations: a missing document is mongo.ErrNoDocuments.

type fakeUserRepo struct {
	users map[string]dom.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]dom.User{}}
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
	// extras records SetFields writes per document, the way schemaless
	// storage would hold keys outside the Blog shape.
	extras map[primitive.ObjectID]map[string]any
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{extras: map[primitive.ObjectID]map[string]any{}}
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

func (r *fakeBlogRepo) SetFields(_ context.Context, id primitive.ObjectID, fields map[string]any) (dom.Blog, error) {
	i := r.index(id)
	if i < 0 {
		return dom.Blog{}, mongo.ErrNoDocuments
	}
	if r.extras[id] == nil {
		r.extras[id] = map[string]any{}
	}
	for k, v := range fields {
		r.extras[id][k] = v
	}
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
