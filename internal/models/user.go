package models

import "github.com/google/uuid"

// User is only read by the authorization check. Password holds the bcrypt
// hash and is never serialized.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
}

func (User) TableName() string { return "users" }
