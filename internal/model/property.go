package model

import "time"

// Property is a listed real-estate unit. Precio is an integer amount,
// no currency handling.
type Property struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Direccion   string    `json:"direccion" gorm:"size:255;not null"`
	Descripcion string    `json:"descripcion" gorm:"not null"`
	Precio      int64     `json:"precio" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Property) TableName() string { return "propiedades" }
