package client

import (
	"context"

	"github.com/BruksfildServices01/barber-crm/internal/audit"
	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
)

type DeleteClient struct {
	clients schedule.ClientRepository
	audit   *audit.Dispatcher
}

func NewDeleteClient(
	clients schedule.ClientRepository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		clients: clients,
		audit:   audit,
	}
}

// Execute apaga o cliente e, em cascata, seus agendamentos.
func (uc *DeleteClient) Execute(
	ctx context.Context,
	ownerID string,
	clientID string,
) error {

	if err := uc.clients.Delete(ctx, ownerID, clientID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &clientID,
	})

	return nil
}
