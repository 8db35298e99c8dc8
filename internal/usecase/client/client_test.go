package client

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-crm/internal/apperr"
	"github.com/BruksfildServices01/barber-crm/internal/audit"
	"github.com/BruksfildServices01/barber-crm/internal/infra/repository"
	"github.com/BruksfildServices01/barber-crm/internal/models"
)

const (
	ownerA = "3f1c2a7e-0000-4000-8000-0000000000aa"
	ownerB = "3f1c2a7e-0000-4000-8000-0000000000bb"
)

func newFixture() (*repository.MemoryStore, *audit.Dispatcher) {
	return repository.NewMemoryStore(), audit.NewDispatcher(audit.New(nil), zerolog.Nop())
}

func TestCreateClientRoundtrip(t *testing.T) {
	store, dispatcher := newFixture()
	uc := NewCreateClient(store.Clients(), dispatcher)
	ctx := context.Background()

	created, err := uc.Execute(ctx, ownerA, CreateClientInput{
		Name:  "  Ana Souza  ",
		Phone: "11987654321",
		Email: "Ana@Example.com ",
		Notes: " prefere quinta ",
	})
	require.NoError(t, err)

	require.NoError(t, uuid.Validate(created.ID))
	assert.Equal(t, ownerA, created.OwnerID)
	assert.Equal(t, "Ana Souza", created.Name)
	assert.Equal(t, "ana@example.com", created.Email)
	assert.Equal(t, "11987654321", created.PhoneDigits)
	assert.Equal(t, "prefere quinta", created.Notes)
	assert.Empty(t, created.LastVisitDate)

	found, err := store.Clients().FindByID(ctx, ownerA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, created.Email, found.Email)
}

func TestCreateClientValidation(t *testing.T) {
	store, dispatcher := newFixture()
	uc := NewCreateClient(store.Clients(), dispatcher)
	ctx := context.Background()

	_, err := uc.Execute(ctx, ownerA, CreateClientInput{Name: "   "})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "name_required", apperr.CodeOf(err))

	_, err = uc.Execute(ctx, ownerA, CreateClientInput{Name: "Ana", Email: "nao-e-email"})
	require.Error(t, err)
	assert.Equal(t, "invalid_email", apperr.CodeOf(err))
}

func TestCreateClientWithoutContact(t *testing.T) {
	store, dispatcher := newFixture()
	uc := NewCreateClient(store.Clients(), dispatcher)

	created, err := uc.Execute(context.Background(), ownerA, CreateClientInput{Name: "Ana"})
	require.NoError(t, err)
	assert.False(t, created.HasContact())
}

func TestUpdateClientPartial(t *testing.T) {
	store, dispatcher := newFixture()
	createUC := NewCreateClient(store.Clients(), dispatcher)
	updateUC := NewUpdateClient(store.Clients(), dispatcher)
	ctx := context.Background()

	created, err := createUC.Execute(ctx, ownerA, CreateClientInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
	})
	require.NoError(t, err)

	notes := "alergia a amônia"
	updated, err := updateUC.Execute(ctx, ownerA, created.ID, UpdateClientInput{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, "Ana Souza", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)
	assert.Equal(t, notes, updated.Notes)

	blank := "  "
	_, err = updateUC.Execute(ctx, ownerA, created.ID, UpdateClientInput{Name: &blank})
	require.Error(t, err)
	assert.Equal(t, "name_required", apperr.CodeOf(err))
}

func TestUpdateClientWrongOwner(t *testing.T) {
	store, dispatcher := newFixture()
	createUC := NewCreateClient(store.Clients(), dispatcher)
	updateUC := NewUpdateClient(store.Clients(), dispatcher)
	ctx := context.Background()

	created, err := createUC.Execute(ctx, ownerA, CreateClientInput{Name: "Ana"})
	require.NoError(t, err)

	name := "Mudou"
	_, err = updateUC.Execute(ctx, ownerB, created.ID, UpdateClientInput{Name: &name})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSearchClientsIsolatedByOwner(t *testing.T) {
	store, dispatcher := newFixture()
	createUC := NewCreateClient(store.Clients(), dispatcher)
	searchUC := NewSearchClients(store.Clients())
	ctx := context.Background()

	_, err := createUC.Execute(ctx, ownerA, CreateClientInput{
		Name:  "Ana Souza",
		Phone: "11987654321",
		Email: "ana@example.com",
	})
	require.NoError(t, err)

	_, err = createUC.Execute(ctx, ownerB, CreateClientInput{Name: "Bruno Lima"})
	require.NoError(t, err)

	// Termo vazio lista só os do owner.
	all, err := searchUC.Execute(ctx, ownerA, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ana Souza", all[0].Name)

	// Cliente de A nunca aparece na busca de B.
	cross, err := searchUC.Execute(ctx, ownerB, "ana")
	require.NoError(t, err)
	assert.Empty(t, cross)
}

func TestSearchClientsByNamePhoneEmail(t *testing.T) {
	store, dispatcher := newFixture()
	createUC := NewCreateClient(store.Clients(), dispatcher)
	searchUC := NewSearchClients(store.Clients())
	ctx := context.Background()

	_, err := createUC.Execute(ctx, ownerA, CreateClientInput{
		Name:  "Ana Souza",
		Phone: "11987654321",
		Email: "ana@example.com",
	})
	require.NoError(t, err)

	_, err = createUC.Execute(ctx, ownerA, CreateClientInput{Name: "Carlos Dias"})
	require.NoError(t, err)

	byName, err := searchUC.Execute(ctx, ownerA, "souza")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Ana Souza", byName[0].Name)

	byPhone, err := searchUC.Execute(ctx, ownerA, "98765")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Ana Souza", byPhone[0].Name)

	byEmail, err := searchUC.Execute(ctx, ownerA, "example.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)

	none, err := searchUC.Execute(ctx, ownerA, "inexistente")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListClientsOrderedByName(t *testing.T) {
	store, dispatcher := newFixture()
	createUC := NewCreateClient(store.Clients(), dispatcher)
	searchUC := NewSearchClients(store.Clients())
	ctx := context.Background()

	for _, name := range []string{"Carlos", "Ana", "Bruno"} {
		_, err := createUC.Execute(ctx, ownerA, CreateClientInput{Name: name})
		require.NoError(t, err)
	}

	all, err := searchUC.Execute(ctx, ownerA, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Ana", all[0].Name)
	assert.Equal(t, "Bruno", all[1].Name)
	assert.Equal(t, "Carlos", all[2].Name)
}

func TestDeleteClientCascadesAppointments(t *testing.T) {
	store, dispatcher := newFixture()
	createUC := NewCreateClient(store.Clients(), dispatcher)
	deleteUC := NewDeleteClient(store.Clients(), dispatcher)
	ctx := context.Background()

	created, err := createUC.Execute(ctx, ownerA, CreateClientInput{Name: "Ana"})
	require.NoError(t, err)

	ap := &models.Appointment{
		ID:       uuid.NewString(),
		OwnerID:  ownerA,
		ClientID: created.ID,
		Date:     "2024-07-20",
		Time:     "09:30",
		Service:  "Corte",
	}
	require.NoError(t, store.Appointments().Create(ctx, ap))

	require.NoError(t, deleteUC.Execute(ctx, ownerA, created.ID))

	_, err = store.Clients().FindByID(ctx, ownerA, created.ID)
	assert.True(t, apperr.IsNotFound(err))

	_, err = store.Appointments().FindByID(ctx, ownerA, ap.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteClientWrongOwner(t *testing.T) {
	store, dispatcher := newFixture()
	createUC := NewCreateClient(store.Clients(), dispatcher)
	deleteUC := NewDeleteClient(store.Clients(), dispatcher)
	ctx := context.Background()

	created, err := createUC.Execute(ctx, ownerA, CreateClientInput{Name: "Ana"})
	require.NoError(t, err)

	err = deleteUC.Execute(ctx, ownerB, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	// O registro de A permanece intacto.
	_, err = store.Clients().FindByID(ctx, ownerA, created.ID)
	assert.NoError(t, err)
}

func TestRecentClientsLimit(t *testing.T) {
	store, dispatcher := newFixture()
	createUC := NewCreateClient(store.Clients(), dispatcher)
	recentUC := NewRecentClients(store.Clients())
	ctx := context.Background()

	names := []string{"Ana", "Bruno", "Carlos", "Denise", "Edu", "Fabi", "Gil"}
	for _, name := range names {
		_, err := createUC.Execute(ctx, ownerA, CreateClientInput{Name: name})
		require.NoError(t, err)
	}

	// Limite zero cai no padrão de 5, mais novos primeiro.
	recent, err := recentUC.Execute(ctx, ownerA, 0)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "Gil", recent[0].Name)
	assert.Equal(t, "Fabi", recent[1].Name)

	two, err := recentUC.Execute(ctx, ownerA, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, "Gil", two[0].Name)

	capped, err := recentUC.Execute(ctx, ownerA, 500)
	require.NoError(t, err)
	assert.Len(t, capped, len(names))
}
