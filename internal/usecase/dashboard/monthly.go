package dashboard

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/dto"
)

// MonthlyStats compara o mês corrente com o anterior. Segue a mesma
// política de degradação do painel: contagem que falha vira zero com
// log, e a chamada em si não falha.
type MonthlyStats struct {
	appointments schedule.AppointmentRepository
	clock        schedule.Clock
	log          zerolog.Logger
}

func NewMonthlyStats(
	appointments schedule.AppointmentRepository,
	clock schedule.Clock,
	log zerolog.Logger,
) *MonthlyStats {
	return &MonthlyStats{
		appointments: appointments,
		clock:        clock,
		log:          log,
	}
}

func (uc *MonthlyStats) Execute(
	ctx context.Context,
	ownerID string,
) *dto.MonthlyStatsDTO {

	now := uc.clock.Now()

	curStart, curEnd := schedule.MonthWindow(now)
	prevStart, prevEnd := schedule.MonthWindow(schedule.PrevMonth(now))

	current := uc.count(ctx, ownerID, curStart, curEnd, "current_month")
	last := uc.count(ctx, ownerID, prevStart, prevEnd, "last_month")

	return &dto.MonthlyStatsDTO{
		CurrentMonthCount: current,
		LastMonthCount:    last,
		PercentageChange:  schedule.PercentChange(current, last),
	}
}

func (uc *MonthlyStats) count(
	ctx context.Context,
	ownerID, start, end, field string,
) int64 {

	sub, cancel := context.WithTimeout(ctx, subQueryTimeout)
	defer cancel()

	n, err := uc.appointments.CountBetween(sub, ownerID, start, end)
	if err != nil {
		uc.log.Warn().
			Err(err).
			Str("field", field).
			Str("owner_id", ownerID).
			Msg("monthly sub-query degraded to default")
		return 0
	}
	return n
}
