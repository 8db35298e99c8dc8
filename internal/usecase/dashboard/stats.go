package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-crm/internal/apperr"
	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/dto"
)

// Cada subconsulta tem seu próprio prazo; estourar uma não derruba
// as outras.
const subQueryTimeout = 3 * time.Second

// DashboardStats agrega os números do painel sem mutar nada. Uma
// subconsulta que falha degrada para zero/nulo e vira uma linha de
// log: painel parcial vale mais que tela em branco, então Execute
// nunca retorna erro.
type DashboardStats struct {
	clients      schedule.ClientRepository
	appointments schedule.AppointmentRepository
	clock        schedule.Clock
	log          zerolog.Logger
}

func NewDashboardStats(
	clients schedule.ClientRepository,
	appointments schedule.AppointmentRepository,
	clock schedule.Clock,
	log zerolog.Logger,
) *DashboardStats {
	return &DashboardStats{
		clients:      clients,
		appointments: appointments,
		clock:        clock,
		log:          log,
	}
}

func (uc *DashboardStats) Execute(
	ctx context.Context,
	ownerID string,
) *dto.DashboardStatsDTO {

	today := uc.clock.Today()
	stats := &dto.DashboardStatsDTO{}

	// Subconsultas independentes e só-leitura; rodam em paralelo.
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		sub, cancel := context.WithTimeout(ctx, subQueryTimeout)
		defer cancel()

		n, err := uc.clients.CountByOwner(sub, ownerID)
		if err != nil {
			uc.degrade(err, "total_clients", ownerID)
			return
		}
		stats.TotalClients = n
	}()

	go func() {
		defer wg.Done()
		sub, cancel := context.WithTimeout(ctx, subQueryTimeout)
		defer cancel()

		n, err := uc.appointments.CountByDate(sub, ownerID, today)
		if err != nil {
			uc.degrade(err, "today_appointments", ownerID)
			return
		}
		stats.TodayAppointments = n
	}()

	go func() {
		defer wg.Done()
		sub, cancel := context.WithTimeout(ctx, subQueryTimeout)
		defer cancel()

		// Futuro inclui o dia corrente, igual ao painel original.
		n, err := uc.appointments.CountFrom(sub, ownerID, today)
		if err != nil {
			uc.degrade(err, "future_appointments", ownerID)
			return
		}
		stats.FutureAppointments = n
	}()

	go func() {
		defer wg.Done()
		sub, cancel := context.WithTimeout(ctx, subQueryTimeout)
		defer cancel()

		ap, err := uc.appointments.LastBefore(sub, ownerID, today)
		if err != nil {
			// Nunca ter atendido ninguém não é falha; o campo fica nulo.
			if !apperr.IsNotFound(err) {
				uc.degrade(err, "last_client", ownerID)
			}
			return
		}
		stats.LastClient = &dto.LastClientDTO{
			Name:    ap.Client.Name,
			Service: ap.Service,
			Time:    ap.Time,
		}
	}()

	wg.Wait()
	return stats
}

func (uc *DashboardStats) degrade(err error, field, ownerID string) {
	uc.log.Warn().
		Err(err).
		Str("field", field).
		Str("owner_id", ownerID).
		Msg("dashboard sub-query degraded to default")
}
