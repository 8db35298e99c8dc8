package models

import "time"

// User é a conta autenticada. Seu ID é o owner_id de todos
// os clientes e agendamentos que ela enxerga.
type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	AvatarURL    string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
