package domain

import "time"

// Account is a registered user identity. The password is stored only as a
// bcrypt hash and is never serialized into responses.
type Account struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
