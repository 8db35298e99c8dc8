package models

import "time"

// Appointment não tem status: a posição relativa ao relógio
// (passado / hoje / futuro) é calculada na consulta, nunca gravada.
type Appointment struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID string `gorm:"type:uuid;index;not null" json:"owner_id"`

	ClientID string `gorm:"type:uuid;index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	// Date no formato 2006-01-02, Time no formato 15:04. Ambos
	// comparam lexicograficamente na ordem cronológica.
	Date string `gorm:"size:10;index;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Service string `gorm:"size:100;not null" json:"service"`
	Notes   string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
