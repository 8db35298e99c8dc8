package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-crm/internal/apperr"
	"github.com/BruksfildServices01/barber-crm/internal/audit"
	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/models"
	"github.com/BruksfildServices01/barber-crm/internal/validators"
)

// Campos nil ficam como estão; atualização é parcial.
type UpdateClientInput struct {
	Name  *string
	Phone *string
	Email *string
	Notes *string
}

type UpdateClient struct {
	clients schedule.ClientRepository
	audit   *audit.Dispatcher
}

func NewUpdateClient(
	clients schedule.ClientRepository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		clients: clients,
		audit:   audit,
	}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	ownerID string,
	clientID string,
	in UpdateClientInput,
) (*models.Client, error) {

	client, err := uc.clients.FindByID(ctx, ownerID, clientID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Validation("name_required")
		}
		client.Name = name
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != "" && !validators.IsEmailValid(email) {
			return nil, apperr.Validation("invalid_email")
		}
		client.Email = email
	}

	if in.Phone != nil {
		client.Phone, client.PhoneDigits = validators.NormalizePhone(*in.Phone)
	}

	if in.Notes != nil {
		client.Notes = strings.TrimSpace(*in.Notes)
	}

	if err := uc.clients.Update(ctx, client); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return client, nil
}
