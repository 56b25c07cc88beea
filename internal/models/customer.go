package models

import "github.com/google/uuid"

type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"index" json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `gorm:"column:image_url" json:"image_url"`
}

func (Customer) TableName() string { return "customers" }
