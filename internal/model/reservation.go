package model

import "time"

// Reservation links a user to a property for a date range. Date ordering
// and overlap are intentionally not validated; any range is accepted.
type Reservation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UsuarioID   uint      `json:"usuario_id" gorm:"not null;index"`
	PropiedadID uint      `json:"propiedad_id" gorm:"not null;index"`
	FechaInicio time.Time `json:"fecha_inicio" gorm:"not null"`
	FechaFin    time.Time `json:"fecha_fin" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Usuario   *User     `json:"-" gorm:"foreignKey:UsuarioID"`
	Propiedad *Property `json:"-" gorm:"foreignKey:PropiedadID"`
}

func (Reservation) TableName() string { return "reservas" }
