package client

import (
	"context"

	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/models"
)

// SearchClients cobre a listagem (termo vazio, ordenada por nome) e a
// busca por substring de nome, telefone ou e-mail.
type SearchClients struct {
	clients schedule.ClientRepository
}

func NewSearchClients(clients schedule.ClientRepository) *SearchClients {
	return &SearchClients{clients: clients}
}

func (uc *SearchClients) Execute(
	ctx context.Context,
	ownerID string,
	term string,
) ([]models.Client, error) {

	if term == "" {
		return uc.clients.ListByOwner(ctx, ownerID)
	}
	return uc.clients.SearchByOwner(ctx, ownerID, term)
}
