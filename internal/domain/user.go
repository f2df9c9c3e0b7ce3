package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the domain entity for a user account.
// Password always holds a bcrypt hash, never the plaintext.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	Portfolio string             `bson:"portfolio"`
}
