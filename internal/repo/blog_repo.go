package repo

import (
	"context"

	dom "github.com/RithigaS/BACKEND/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogRepo provides blog persistence. Methods that target a single document
// by id report a missing document as mongo.ErrNoDocuments.
type BlogRepo interface {
	Create(ctx context.Context, b dom.Blog) (dom.Blog, error)
	List(ctx context.Context) ([]dom.Blog, error)
	SetFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (dom.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	PushComment(ctx context.Context, id primitive.ObjectID, c dom.Comment) (dom.Blog, error)
	CountByAuthor(ctx context.Context, author string) (int64, error)
}

// MongoBlogRepo implements BlogRepo on the blogs collection.
type MongoBlogRepo struct {
	col *mongo.Collection
}

// NewMongoBlogRepo returns a new MongoBlogRepo.
func NewMongoBlogRepo(db *mongo.Database) *MongoBlogRepo {
	return &MongoBlogRepo{col: db.Collection("blogs")}
}

// Create inserts a new blog and returns it with its assigned id.
func (r *MongoBlogRepo) Create(ctx context.Context, b dom.Blog) (dom.Blog, error) {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return dom.Blog{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = id
	}
	return b, nil
}

// List returns every blog document in storage-native order.
func (r *MongoBlogRepo) List(ctx context.Context) ([]dom.Blog, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var blogs []dom.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// SetFields $sets the given keys on the document and returns the post-update
// document decoded into the Blog shape. Keys outside the schema land in the
// document untouched by the decode.
func (r *MongoBlogRepo) SetFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (dom.Blog, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	var b dom.Blog
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&b)
	return b, err
}

// Delete removes the document permanently.
func (r *MongoBlogRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// PushComment atomically appends one comment to the blog's comments array
// and returns the post-update document. A single $push avoids the lost
// update a read-then-rewrite of the whole document would allow.
func (r *MongoBlogRepo) PushComment(ctx context.Context, id primitive.ObjectID, c dom.Comment) (dom.Blog, error) {
	var b dom.Blog
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"comments": c}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&b)
	return b, err
}

// CountByAuthor counts blogs whose author exactly equals author.
func (r *MongoBlogRepo) CountByAuthor(ctx context.Context, author string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"author": author})
}
