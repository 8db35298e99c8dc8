package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-crm/internal/apperr"
	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/dto"
)

type ListAppointmentsByDate struct {
	appointments schedule.AppointmentRepository
}

func NewListAppointmentsByDate(
	appointments schedule.AppointmentRepository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		appointments: appointments,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	ownerID string,
	date string,
) ([]dto.AppointmentDTO, error) {

	if _, err := schedule.ParseDate(date); err != nil {
		return nil, apperr.Validation("invalid_date")
	}

	aps, err := uc.appointments.ListByDate(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentDTO{
			ID:      ap.ID,
			Date:    ap.Date,
			Time:    ap.Time,
			Service: ap.Service,
			Notes:   ap.Notes,
			Client: dto.AppointmentClientDTO{
				ID:    ap.Client.ID,
				Name:  ap.Client.Name,
				Phone: ap.Client.Phone,
				Email: ap.Client.Email,
			},
		})
	}

	return out, nil
}
