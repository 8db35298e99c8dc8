package models

import "time"

type Client struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID string `gorm:"type:uuid;index;not null" json:"owner_id"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Phone guarda o formato de exibição; PhoneDigits só os
	// dígitos, usado em busca e deduplicação.
	Phone       string `gorm:"size:20" json:"phone"`
	PhoneDigits string `gorm:"size:20;index" json:"-"`

	Email string `gorm:"size:100" json:"email"`

	// Data da última visita atendida, formato 2006-01-02.
	LastVisitDate string `gorm:"size:10" json:"last_visit_date"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasContact indica se existe algum canal de contato. Registro sem
// telefone e sem e-mail continua válido; consumidores exibem "sem contato".
func (c *Client) HasContact() bool {
	return c.Phone != "" || c.Email != ""
}
