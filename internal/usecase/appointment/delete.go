package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-crm/internal/audit"
	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
)

type DeleteAppointment struct {
	appointments schedule.AppointmentRepository
	audit        *audit.Dispatcher
}

func NewDeleteAppointment(
	appointments schedule.AppointmentRepository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		appointments: appointments,
		audit:        audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	ownerID string,
	appointmentID string,
) error {

	if err := uc.appointments.Delete(ctx, ownerID, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
