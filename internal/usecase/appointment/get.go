package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/dto"
)

type GetAppointment struct {
	appointments schedule.AppointmentRepository
}

func NewGetAppointment(appointments schedule.AppointmentRepository) *GetAppointment {
	return &GetAppointment{appointments: appointments}
}

// Execute devolve o agendamento com os dados do cliente. Owner errado
// responde não-encontrado, nunca revelando registros de terceiros.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	ownerID string,
	appointmentID string,
) (*dto.AppointmentDTO, error) {

	ap, err := uc.appointments.FindByID(ctx, ownerID, appointmentID)
	if err != nil {
		return nil, err
	}

	return &dto.AppointmentDTO{
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
	}, nil
}
