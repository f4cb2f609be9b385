package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/httperr"
	"github.com/angiescolor/salon-agenda/internal/models"
)

// fakeRepo reproduce en memoria el contrato del repositorio, incluido el
// chequeo de superposición dentro del "alta".
type fakeRepo struct {
	clients      map[uint]*models.Client
	staff        map[uint]*models.Staff
	specialties  map[uint]*models.Specialty
	rooms        map[uint]*models.Room
	appointments map[uint]*models.Appointment

	nextClientID      uint
	nextAppointmentID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:      map[uint]*models.Client{},
		staff:        map[uint]*models.Staff{},
		specialties:  map[uint]*models.Specialty{},
		rooms:        map[uint]*models.Room{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (r *fakeRepo) addStaff(id uint, name string) {
	r.staff[id] = &models.Staff{ID: id, Name: name}
}

func (r *fakeRepo) addClient(id uint, name, phone string) {
	r.clients[id] = &models.Client{ID: id, Name: name, Phone: phone}
	if id > r.nextClientID {
		r.nextClientID = id
	}
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return c, nil
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, name, phone, email string) (*models.Client, error) {
	if phone != "" {
		for _, c := range r.clients {
			if c.Phone == phone {
				return c, nil
			}
		}
	}
	r.nextClientID++
	c := &models.Client{ID: r.nextClientID, Name: name, Phone: phone, Email: email}
	r.clients[c.ID] = c
	return c, nil
}

func (r *fakeRepo) TouchClientLastVisit(_ context.Context, clientID uint, visit time.Time) error {
	if c, ok := r.clients[clientID]; ok {
		c.LastVisit = &visit
	}
	return nil
}

func (r *fakeRepo) GetStaff(_ context.Context, id uint) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, httperr.ErrBusiness("staff_not_found")
	}
	return s, nil
}

func (r *fakeRepo) GetSpecialty(_ context.Context, id uint) (*models.Specialty, error) {
	s, ok := r.specialties[id]
	if !ok {
		return nil, httperr.ErrBusiness("specialty_not_found")
	}
	return s, nil
}

func (r *fakeRepo) GetRoom(_ context.Context, id uint) (*models.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, httperr.ErrBusiness("room_not_found")
	}
	return room, nil
}

func (r *fakeRepo) assertSlotFree(ap *models.Appointment, excludeID uint) error {
	var existing []domain.Booking
	for _, other := range r.appointments {
		if other.Date.Equal(ap.Date) {
			existing = append(existing, domain.BookingOf(other))
		}
	}
	if free, _ := domain.IsFree(domain.BookingOf(ap), existing, excludeID); !free {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if err := r.assertSlotFree(ap, 0); err != nil {
		return err
	}
	r.nextAppointmentID++
	ap.ID = r.nextAppointmentID
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if err := r.assertSlotFree(ap, ap.ID); err != nil {
		return err
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	out := *ap
	if c, ok := r.clients[ap.ClientID]; ok {
		out.Client = *c
	}
	return &out, nil
}

func (r *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) ListAppointmentsForDay(
	_ context.Context,
	date time.Time,
	staffID *uint,
	roomID *uint,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range r.appointments {
		if !ap.Date.Equal(date) || ap.Status != string(domain.StatusActive) {
			continue
		}
		if staffID != nil && (ap.StaffID == nil || *ap.StaffID != *staffID) {
			continue
		}
		if roomID != nil && (ap.RoomID == nil || *ap.RoomID != *roomID) {
			continue
		}

		row := *ap
		if c, ok := r.clients[ap.ClientID]; ok {
			row.Client = *c
		}
		if ap.StaffID != nil {
			row.Staff = r.staff[*ap.StaffID]
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartMin != out[j].StartMin {
			return out[i].StartMin < out[j].StartMin
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
