package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/dto"
)

type ListUpcomingAppointments struct {
	appointments schedule.AppointmentRepository
	clock        schedule.Clock

	// includeToday muda a fronteira de "próximo" de estritamente
	// depois de hoje para >= hoje. O padrão (false) é o consistente
	// com o dashboard.
	includeToday bool
}

func NewListUpcomingAppointments(
	appointments schedule.AppointmentRepository,
	clock schedule.Clock,
	includeToday bool,
) *ListUpcomingAppointments {
	return &ListUpcomingAppointments{
		appointments: appointments,
		clock:        clock,
		includeToday: includeToday,
	}
}

func (uc *ListUpcomingAppointments) Execute(
	ctx context.Context,
	ownerID string,
) ([]dto.UpcomingAppointmentDTO, error) {

	aps, err := uc.appointments.ListUpcoming(
		ctx,
		ownerID,
		uc.clock.Today(),
		uc.includeToday,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UpcomingAppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.UpcomingAppointmentDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Service:     ap.Service,
			ClientID:    ap.Client.ID,
			ClientName:  ap.Client.Name,
			ClientPhone: ap.Client.Phone,
		})
	}

	return out, nil
}
