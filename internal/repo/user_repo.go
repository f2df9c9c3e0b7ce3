package repo

import (
	"context"

	dom "github.com/RithigaS/BACKEND/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	Create(ctx context.Context, u dom.User) (dom.User, error)
	UpdatePortfolio(ctx context.Context, username, portfolio string) (dom.User, error)
}

// MongoUserRepo implements UserRepo on the users collection.
type MongoUserRepo struct {
	col *mongo.Collection
}

// NewMongoUserRepo returns a new MongoUserRepo.
func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{col: db.Collection("users")}
}

// EnsureIndexes creates the unique index on username. Run once at startup.
func (r *MongoUserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// GetByUsername returns the user by username. Errors with
// mongo.ErrNoDocuments when absent.
func (r *MongoUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	return u, err
}

// Create inserts a new user and returns it with its assigned id.
func (r *MongoUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return dom.User{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return u, nil
}

// UpdatePortfolio overwrites the portfolio field and returns the
// post-update document.
func (r *MongoUserRepo) UpdatePortfolio(ctx context.Context, username, portfolio string) (dom.User, error) {
	var u dom.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"portfolio": portfolio}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	return u, err
}
