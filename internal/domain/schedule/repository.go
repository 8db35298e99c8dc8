package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-crm/internal/models"
)

// Todas as consultas são limitadas a um owner; visibilidade cruzada
// nunca é permitida e ausência de posse responde como não-encontrado.

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error

	Update(ctx context.Context, client *models.Client) error

	// Delete remove o cliente e, em cascata, seus agendamentos.
	Delete(ctx context.Context, ownerID, clientID string) error

	FindByID(ctx context.Context, ownerID, clientID string) (*models.Client, error)

	// ListByOwner ordena por nome crescente.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Client, error)

	// SearchByOwner filtra por substring de nome, telefone ou e-mail,
	// sem diferenciar maiúsculas.
	SearchByOwner(ctx context.Context, ownerID, term string) ([]models.Client, error)

	// ListRecent ordena por created_at decrescente, limitado a limit.
	ListRecent(ctx context.Context, ownerID string, limit int) ([]models.Client, error)

	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, ap *models.Appointment) error

	Update(ctx context.Context, ap *models.Appointment) error

	Delete(ctx context.Context, ownerID, appointmentID string) error

	// FindByID carrega o cliente junto.
	FindByID(ctx context.Context, ownerID, appointmentID string) (*models.Appointment, error)

	// ListByDate carrega o cliente junto, ordenado por horário crescente.
	ListByDate(ctx context.Context, ownerID, date string) ([]models.Appointment, error)

	// ListUpcoming devolve agendamentos com data estritamente maior que
	// fromDate (ou >= com includeToday), ordenados por (data, horário).
	ListUpcoming(ctx context.Context, ownerID, fromDate string, includeToday bool) ([]models.Appointment, error)

	CountByDate(ctx context.Context, ownerID, date string) (int64, error)

	// CountFrom conta agendamentos com data >= fromDate.
	CountFrom(ctx context.Context, ownerID, fromDate string) (int64, error)

	// CountBetween conta agendamentos com start <= data <= end.
	CountBetween(ctx context.Context, ownerID, start, end string) (int64, error)

	// LastBefore devolve o agendamento mais recente com data < date,
	// desempatado pelo maior horário do dia, com o cliente junto.
	// Retorna não-encontrado quando não existe nenhum.
	LastBefore(ctx context.Context, ownerID, date string) (*models.Appointment, error)

	// TouchLastVisit avança last_visit_date do cliente quando date é
	// mais recente que o valor gravado.
	TouchLastVisit(ctx context.Context, ownerID, clientID, date string) error
}
