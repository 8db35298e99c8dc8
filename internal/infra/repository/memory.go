package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-crm/internal/apperr"
	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/models"
	"github.com/BruksfildServices01/barber-crm/internal/validators"
)

// MemoryStore implementa os dois repositórios sobre mapas, com o mesmo
// contrato da versão Postgres (posse, cascata, ordenação). Serve aos
// testes de usecase e a qualquer execução sem banco.
type MemoryStore struct {
	mu  sync.RWMutex
	seq int

	clients      map[string]models.Client
	appointments map[string]models.Appointment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clients:      make(map[string]models.Client),
		appointments: make(map[string]models.Appointment),
	}
}

func (s *MemoryStore) Clients() schedule.ClientRepository {
	return &memoryClientRepo{store: s}
}

func (s *MemoryStore) Appointments() schedule.AppointmentRepository {
	return &memoryAppointmentRepo{store: s}
}

// stamp gera created_at crescente e estável para ordenação.
func (s *MemoryStore) stamp() time.Time {
	s.seq++
	return time.Unix(int64(s.seq), 0)
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

type memoryClientRepo struct {
	store *MemoryStore
}

func (r *memoryClientRepo) Create(_ context.Context, client *models.Client) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	client.CreatedAt = s.stamp()
	client.UpdatedAt = client.CreatedAt
	s.clients[client.ID] = *client
	return nil
}

func (r *memoryClientRepo) Update(_ context.Context, client *models.Client) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.clients[client.ID]
	if !ok || cur.OwnerID != client.OwnerID {
		return apperr.NotFound("client_not_found")
	}

	client.UpdatedAt = s.stamp()
	s.clients[client.ID] = *client
	return nil
}

func (r *memoryClientRepo) Delete(_ context.Context, ownerID, clientID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.clients[clientID]
	if !ok || cur.OwnerID != ownerID {
		return apperr.NotFound("client_not_found")
	}

	delete(s.clients, clientID)

	// Cascata: agendamentos do cliente vão junto.
	for id, ap := range s.appointments {
		if ap.OwnerID == ownerID && ap.ClientID == clientID {
			delete(s.appointments, id)
		}
	}
	return nil
}

func (r *memoryClientRepo) FindByID(_ context.Context, ownerID, clientID string) (*models.Client, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	cur, ok := s.clients[clientID]
	if !ok || cur.OwnerID != ownerID {
		return nil, apperr.NotFound("client_not_found")
	}
	out := cur
	return &out, nil
}

func (r *memoryClientRepo) ListByOwner(_ context.Context, ownerID string) ([]models.Client, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.collectClients(ownerID, func(models.Client) bool { return true })
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memoryClientRepo) SearchByOwner(_ context.Context, ownerID, term string) ([]models.Client, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))
	digits := validators.OnlyDigits(term)

	out := s.collectClients(ownerID, func(c models.Client) bool {
		if strings.Contains(strings.ToLower(c.Name), term) {
			return true
		}
		if strings.Contains(strings.ToLower(c.Email), term) {
			return true
		}
		return digits != "" && strings.Contains(c.PhoneDigits, digits)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memoryClientRepo) ListRecent(_ context.Context, ownerID string, limit int) ([]models.Client, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.collectClients(ownerID, func(models.Client) bool { return true })
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryClientRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.collectClients(ownerID, func(models.Client) bool { return true }))), nil
}

func (s *MemoryStore) collectClients(ownerID string, keep func(models.Client) bool) []models.Client {
	out := make([]models.Client, 0)
	for _, c := range s.clients {
		if c.OwnerID == ownerID && keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

type memoryAppointmentRepo struct {
	store *MemoryStore
}

func (r *memoryAppointmentRepo) Create(_ context.Context, ap *models.Appointment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	ap.CreatedAt = s.stamp()
	ap.UpdatedAt = ap.CreatedAt

	stored := *ap
	stored.Client = models.Client{}
	s.appointments[ap.ID] = stored
	return nil
}

func (r *memoryAppointmentRepo) Update(_ context.Context, ap *models.Appointment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.appointments[ap.ID]
	if !ok || cur.OwnerID != ap.OwnerID {
		return apperr.NotFound("appointment_not_found")
	}

	ap.UpdatedAt = s.stamp()
	stored := *ap
	stored.Client = models.Client{}
	s.appointments[ap.ID] = stored
	return nil
}

func (r *memoryAppointmentRepo) Delete(_ context.Context, ownerID, appointmentID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.appointments[appointmentID]
	if !ok || cur.OwnerID != ownerID {
		return apperr.NotFound("appointment_not_found")
	}
	delete(s.appointments, appointmentID)
	return nil
}

func (r *memoryAppointmentRepo) FindByID(_ context.Context, ownerID, appointmentID string) (*models.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	cur, ok := s.appointments[appointmentID]
	if !ok || cur.OwnerID != ownerID {
		return nil, apperr.NotFound("appointment_not_found")
	}
	out := s.withClient(cur)
	return &out, nil
}

func (r *memoryAppointmentRepo) ListByDate(_ context.Context, ownerID, date string) ([]models.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.collectAppointments(ownerID, func(ap models.Appointment) bool {
		return ap.Date == date
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (r *memoryAppointmentRepo) ListUpcoming(_ context.Context, ownerID, fromDate string, includeToday bool) ([]models.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.collectAppointments(ownerID, func(ap models.Appointment) bool {
		if includeToday {
			return ap.Date >= fromDate
		}
		return ap.Date > fromDate
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (r *memoryAppointmentRepo) CountByDate(_ context.Context, ownerID, date string) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.collectAppointments(ownerID, func(ap models.Appointment) bool {
		return ap.Date == date
	}))), nil
}

func (r *memoryAppointmentRepo) CountFrom(_ context.Context, ownerID, fromDate string) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.collectAppointments(ownerID, func(ap models.Appointment) bool {
		return ap.Date >= fromDate
	}))), nil
}

func (r *memoryAppointmentRepo) CountBetween(_ context.Context, ownerID, start, end string) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.collectAppointments(ownerID, func(ap models.Appointment) bool {
		return ap.Date >= start && ap.Date <= end
	}))), nil
}

func (r *memoryAppointmentRepo) LastBefore(_ context.Context, ownerID, date string) (*models.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	past := s.collectAppointments(ownerID, func(ap models.Appointment) bool {
		return ap.Date < date
	})
	if len(past) == 0 {
		return nil, apperr.NotFound("appointment_not_found")
	}

	sort.Slice(past, func(i, j int) bool {
		if past[i].Date != past[j].Date {
			return past[i].Date > past[j].Date
		}
		return past[i].Time > past[j].Time
	})

	out := past[0]
	return &out, nil
}

func (r *memoryAppointmentRepo) TouchLastVisit(_ context.Context, ownerID, clientID, date string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.clients[clientID]
	if !ok || cur.OwnerID != ownerID {
		return apperr.NotFound("client_not_found")
	}

	if cur.LastVisitDate == "" || cur.LastVisitDate < date {
		cur.LastVisitDate = date
		s.clients[clientID] = cur
	}
	return nil
}

func (s *MemoryStore) collectAppointments(ownerID string, keep func(models.Appointment) bool) []models.Appointment {
	out := make([]models.Appointment, 0)
	for _, ap := range s.appointments {
		if ap.OwnerID == ownerID && keep(ap) {
			out = append(out, s.withClient(ap))
		}
	}
	return out
}

func (s *MemoryStore) withClient(ap models.Appointment) models.Appointment {
	if c, ok := s.clients[ap.ClientID]; ok {
		ap.Client = c
	}
	return ap
}

// Compile-time checks
var (
	_ schedule.ClientRepository      = (*memoryClientRepo)(nil)
	_ schedule.AppointmentRepository = (*memoryAppointmentRepo)(nil)
)
