package client

import (
	"context"

	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/models"
)

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 50
)

type RecentClients struct {
	clients schedule.ClientRepository
}

func NewRecentClients(clients schedule.ClientRepository) *RecentClients {
	return &RecentClients{clients: clients}
}

// Execute lista os clientes mais novos por created_at decrescente.
func (uc *RecentClients) Execute(
	ctx context.Context,
	ownerID string,
	limit int,
) ([]models.Client, error) {

	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	return uc.clients.ListRecent(ctx, ownerID, limit)
}
