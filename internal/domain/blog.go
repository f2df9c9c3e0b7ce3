package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a single post document. Comments are embedded: they have no
// identity or lifecycle outside their parent blog.
type Blog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Content      string             `bson:"content"`
	Author       string             `bson:"author"`
	Category     string             `bson:"category"`
	ExternalLink string             `bson:"externalLink,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	Comments     []Comment          `bson:"comments"`
}

type Comment struct {
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
}
