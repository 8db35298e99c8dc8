package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-crm/internal/apperr"
	"github.com/BruksfildServices01/barber-crm/internal/audit"
	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID string
	Date     string
	Time     string
	Service  string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	appointments schedule.AppointmentRepository
	clients      schedule.ClientRepository
	catalog      *schedule.SlotCatalog
	clock        schedule.Clock
	audit        *audit.Dispatcher
}

func NewCreateAppointment(
	appointments schedule.AppointmentRepository,
	clients schedule.ClientRepository,
	catalog *schedule.SlotCatalog,
	clock schedule.Clock,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		appointments: appointments,
		clients:      clients,
		catalog:      catalog,
		clock:        clock,
		audit:        audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	ownerID string,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Data e horário
	// --------------------------------------------------
	if _, err := schedule.ParseDate(in.Date); err != nil {
		return nil, apperr.Validation("invalid_date")
	}

	if !uc.catalog.IsValid(in.Time) {
		return nil, apperr.Validation("invalid_time_slot")
	}

	// Criação padrão não agenda no passado. Edição é outra história
	// (ver UpdateAppointment).
	if in.Date < uc.clock.Today() {
		return nil, apperr.Validation("date_in_past")
	}

	service := strings.TrimSpace(in.Service)
	if service == "" {
		return nil, apperr.Validation("service_required")
	}

	// --------------------------------------------------
	// Vínculo com o cliente, dentro do mesmo owner
	// --------------------------------------------------
	client, err := uc.clients.FindByID(ctx, ownerID, in.ClientID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Validation("client_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// Persistência. Nenhuma exclusividade de slot: dois agendamentos
	// no mesmo (date, time) são permitidos por desenho.
	// --------------------------------------------------
	ap := &models.Appointment{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		ClientID: client.ID,
		Date:     in.Date,
		Time:     in.Time,
		Service:  service,
		Notes:    strings.TrimSpace(in.Notes),
	}

	if err := uc.appointments.Create(ctx, ap); err != nil {
		return nil, err
	}

	if ap.Date == uc.clock.Today() {
		// Visita de hoje conta como atendimento.
		if err := uc.appointments.TouchLastVisit(ctx, ownerID, client.ID, ap.Date); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	ap.Client = *client
	return ap, nil
}
