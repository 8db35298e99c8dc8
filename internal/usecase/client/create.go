package client

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-crm/internal/apperr"
	"github.com/BruksfildServices01/barber-crm/internal/audit"
	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/models"
	"github.com/BruksfildServices01/barber-crm/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateClientInput struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	clients schedule.ClientRepository
	audit   *audit.Dispatcher
}

func NewCreateClient(
	clients schedule.ClientRepository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		clients: clients,
		audit:   audit,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	ownerID string,
	in CreateClientInput,
) (*models.Client, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name_required")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" && !validators.IsEmailValid(email) {
		return nil, apperr.Validation("invalid_email")
	}

	phone, digits := validators.NormalizePhone(in.Phone)

	client := &models.Client{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        name,
		Phone:       phone,
		PhoneDigits: digits,
		Email:       email,
		Notes:       strings.TrimSpace(in.Notes),
	}

	if err := uc.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return client, nil
}
