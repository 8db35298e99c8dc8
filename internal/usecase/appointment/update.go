package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-crm/internal/apperr"
	"github.com/BruksfildServices01/barber-crm/internal/audit"
	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/models"
)

// Atualização parcial; só campos não-nil são tocados e revalidados.
// Diferente da criação, a edição aceita datas passadas: é assim que
// uma visita já atendida é corrigida.
type UpdateAppointmentInput struct {
	ClientID *string
	Date     *string
	Time     *string
	Service  *string
	Notes    *string
}

type UpdateAppointment struct {
	appointments schedule.AppointmentRepository
	clients      schedule.ClientRepository
	catalog      *schedule.SlotCatalog
	clock        schedule.Clock
	audit        *audit.Dispatcher
}

func NewUpdateAppointment(
	appointments schedule.AppointmentRepository,
	clients schedule.ClientRepository,
	catalog *schedule.SlotCatalog,
	clock schedule.Clock,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		appointments: appointments,
		clients:      clients,
		catalog:      catalog,
		clock:        clock,
		audit:        audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	ownerID string,
	appointmentID string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, ownerID, appointmentID)
	if err != nil {
		return nil, err
	}

	if in.Date != nil {
		if _, err := schedule.ParseDate(*in.Date); err != nil {
			return nil, apperr.Validation("invalid_date")
		}
		ap.Date = *in.Date
	}

	if in.Time != nil {
		if !uc.catalog.IsValid(*in.Time) {
			return nil, apperr.Validation("invalid_time_slot")
		}
		ap.Time = *in.Time
	}

	if in.Service != nil {
		service := strings.TrimSpace(*in.Service)
		if service == "" {
			return nil, apperr.Validation("service_required")
		}
		ap.Service = service
	}

	if in.Notes != nil {
		ap.Notes = strings.TrimSpace(*in.Notes)
	}

	if in.ClientID != nil && *in.ClientID != ap.ClientID {
		client, err := uc.clients.FindByID(ctx, ownerID, *in.ClientID)
		if err != nil {
			if apperr.IsNotFound(err) {
				return nil, apperr.Validation("client_not_found")
			}
			return nil, err
		}
		ap.ClientID = client.ID
		ap.Client = *client
	}

	if err := uc.appointments.Update(ctx, ap); err != nil {
		return nil, err
	}

	if ap.Date <= uc.clock.Today() {
		if err := uc.appointments.TouchLastVisit(ctx, ownerID, ap.ClientID, ap.Date); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
