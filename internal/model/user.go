package model

import "time"

// User represents a registered account. The bcrypt hash is never
// serialized into responses.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Nombre       string    `json:"nombre" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the table name the API has always exposed.
func (User) TableName() string { return "usuarios" }
