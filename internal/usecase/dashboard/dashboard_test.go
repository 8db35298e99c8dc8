package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-crm/internal/apperr"
	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/infra/repository"
	"github.com/BruksfildServices01/barber-crm/internal/models"
	"github.com/BruksfildServices01/barber-crm/internal/timezone"
)

const ownerA = "3f1c2a7e-0000-4000-8000-0000000000aa"

func fixedClock(year int, month time.Month, day int) schedule.Clock {
	return schedule.NewFixedClock(time.Date(year, month, day, 12, 0, 0, 0, timezone.Location()))
}

func seedClient(t *testing.T, store *repository.MemoryStore, ownerID, name string) *models.Client {
	t.Helper()

	c := &models.Client{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Name:    name,
	}
	require.NoError(t, store.Clients().Create(context.Background(), c))
	return c
}

func seedAppointment(t *testing.T, store *repository.MemoryStore, ownerID, clientID, date, hour, service string) {
	t.Helper()

	ap := &models.Appointment{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		ClientID: clientID,
		Date:     date,
		Time:     hour,
		Service:  service,
	}
	require.NoError(t, store.Appointments().Create(context.Background(), ap))
}

func TestDashboardStats(t *testing.T) {
	store := repository.NewMemoryStore()
	client := seedClient(t, store, ownerA, "Carlos Dias")

	// Hoje é 15/07: uma visita passada, uma hoje, uma futura.
	seedAppointment(t, store, ownerA, client.ID, "2024-07-10", "10:00", "Corte")
	seedAppointment(t, store, ownerA, client.ID, "2024-07-15", "09:00", "Barba")
	seedAppointment(t, store, ownerA, client.ID, "2024-07-20", "14:00", "Corte")

	uc := NewDashboardStats(store.Clients(), store.Appointments(), fixedClock(2024, time.July, 15), zerolog.Nop())
	stats := uc.Execute(context.Background(), ownerA)

	assert.Equal(t, int64(1), stats.TotalClients)
	assert.Equal(t, int64(1), stats.TodayAppointments)
	// Futuro inclui o dia corrente.
	assert.Equal(t, int64(2), stats.FutureAppointments)

	require.NotNil(t, stats.LastClient)
	assert.Equal(t, "Carlos Dias", stats.LastClient.Name)
	assert.Equal(t, "Corte", stats.LastClient.Service)
	assert.Equal(t, "10:00", stats.LastClient.Time)
}

func TestDashboardStatsLastClientPicksLatestVisit(t *testing.T) {
	store := repository.NewMemoryStore()
	ana := seedClient(t, store, ownerA, "Ana")
	bruno := seedClient(t, store, ownerA, "Bruno")

	seedAppointment(t, store, ownerA, ana.ID, "2024-07-10", "09:00", "Corte")
	seedAppointment(t, store, ownerA, bruno.ID, "2024-07-14", "08:30", "Barba")
	seedAppointment(t, store, ownerA, bruno.ID, "2024-07-14", "16:00", "Corte")

	uc := NewDashboardStats(store.Clients(), store.Appointments(), fixedClock(2024, time.July, 15), zerolog.Nop())
	stats := uc.Execute(context.Background(), ownerA)

	require.NotNil(t, stats.LastClient)
	assert.Equal(t, "Bruno", stats.LastClient.Name)
	assert.Equal(t, "16:00", stats.LastClient.Time)
}

func TestDashboardStatsEmptyOwner(t *testing.T) {
	store := repository.NewMemoryStore()

	uc := NewDashboardStats(store.Clients(), store.Appointments(), fixedClock(2024, time.July, 15), zerolog.Nop())
	stats := uc.Execute(context.Background(), ownerA)

	assert.Zero(t, stats.TotalClients)
	assert.Zero(t, stats.TodayAppointments)
	assert.Zero(t, stats.FutureAppointments)
	// Nunca ter atendido ninguém não é falha.
	assert.Nil(t, stats.LastClient)
}

// failingClientRepo derruba só a contagem de clientes.
type failingClientRepo struct {
	schedule.ClientRepository
}

func (failingClientRepo) CountByOwner(context.Context, string) (int64, error) {
	return 0, apperr.Connectivity(errors.New("connection refused"))
}

func TestDashboardStatsDegradesFailedSubQuery(t *testing.T) {
	store := repository.NewMemoryStore()
	client := seedClient(t, store, ownerA, "Ana")
	seedAppointment(t, store, ownerA, client.ID, "2024-07-15", "09:00", "Corte")

	uc := NewDashboardStats(
		failingClientRepo{store.Clients()},
		store.Appointments(),
		fixedClock(2024, time.July, 15),
		zerolog.Nop(),
	)
	stats := uc.Execute(context.Background(), ownerA)

	// A subconsulta quebrada vira default; as demais seguem corretas.
	assert.Zero(t, stats.TotalClients)
	assert.Equal(t, int64(1), stats.TodayAppointments)
	assert.Equal(t, int64(1), stats.FutureAppointments)
}

func TestMonthlyStats(t *testing.T) {
	store := repository.NewMemoryStore()
	client := seedClient(t, store, ownerA, "Ana")

	seedAppointment(t, store, ownerA, client.ID, "2024-07-01", "09:00", "Corte")
	seedAppointment(t, store, ownerA, client.ID, "2024-07-15", "10:00", "Corte")
	seedAppointment(t, store, ownerA, client.ID, "2024-07-31", "11:00", "Corte")
	seedAppointment(t, store, ownerA, client.ID, "2024-06-10", "09:00", "Corte")
	seedAppointment(t, store, ownerA, client.ID, "2024-06-20", "09:00", "Corte")
	// Fora das duas janelas.
	seedAppointment(t, store, ownerA, client.ID, "2024-05-31", "09:00", "Corte")
	seedAppointment(t, store, ownerA, client.ID, "2024-08-01", "09:00", "Corte")

	uc := NewMonthlyStats(store.Appointments(), fixedClock(2024, time.July, 15), zerolog.Nop())
	out := uc.Execute(context.Background(), ownerA)

	assert.Equal(t, int64(3), out.CurrentMonthCount)
	assert.Equal(t, int64(2), out.LastMonthCount)
	assert.Equal(t, 50, out.PercentageChange)
}

func TestMonthlyStatsEmptyLastMonth(t *testing.T) {
	store := repository.NewMemoryStore()
	client := seedClient(t, store, ownerA, "Ana")
	seedAppointment(t, store, ownerA, client.ID, "2024-07-15", "09:00", "Corte")

	uc := NewMonthlyStats(store.Appointments(), fixedClock(2024, time.July, 15), zerolog.Nop())
	out := uc.Execute(context.Background(), ownerA)

	assert.Equal(t, int64(1), out.CurrentMonthCount)
	assert.Zero(t, out.LastMonthCount)
	// Mês anterior zerado não infla o percentual.
	assert.Zero(t, out.PercentageChange)
}

func TestMonthlyStatsJanuaryComparesToDecember(t *testing.T) {
	store := repository.NewMemoryStore()
	client := seedClient(t, store, ownerA, "Ana")

	seedAppointment(t, store, ownerA, client.ID, "2023-12-20", "09:00", "Corte")
	seedAppointment(t, store, ownerA, client.ID, "2023-12-28", "09:00", "Corte")
	seedAppointment(t, store, ownerA, client.ID, "2024-01-10", "09:00", "Corte")

	uc := NewMonthlyStats(store.Appointments(), fixedClock(2024, time.January, 15), zerolog.Nop())
	out := uc.Execute(context.Background(), ownerA)

	assert.Equal(t, int64(1), out.CurrentMonthCount)
	assert.Equal(t, int64(2), out.LastMonthCount)
	assert.Equal(t, -50, out.PercentageChange)
}
