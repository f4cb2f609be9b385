package appointment

import (
	"context"

	"github.com/angiescolor/salon-agenda/internal/audit"
	domain "github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/httperr"
	"github.com/angiescolor/salon-agenda/internal/models"
	"github.com/angiescolor/salon-agenda/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// La edición reemplaza los campos mutables completos: fecha y hora son
// obligatorias, los recursos vienen como quedan (nil = sin asignar).
// El cliente del turno no cambia.
type RescheduleAppointmentInput struct {
	ID uint

	Date string
	Time string

	DurationMin int

	SpecialtyID *uint
	StaffID     *uint
	RoomID      *uint

	DepositPaid   bool
	DepositAmount int
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo  domain.Repository
	grid  domain.GridConfig
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	grid domain.GridConfig,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		grid:  grid,
		audit: audit,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.Status != string(domain.StatusActive) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	date, err := validators.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	start, err := domain.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	duration := in.DurationMin
	if duration == 0 {
		duration = ap.DurationMin
	}
	if duration < 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	if !uc.grid.Contains(start, duration) {
		return nil, httperr.ErrBusiness("outside_opening_hours")
	}

	if in.SpecialtyID != nil {
		if _, err := uc.repo.GetSpecialty(ctx, *in.SpecialtyID); err != nil {
			return nil, httperr.ErrBusiness("specialty_not_found")
		}
	}
	if in.StaffID != nil {
		if _, err := uc.repo.GetStaff(ctx, *in.StaffID); err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
	}
	if in.RoomID != nil {
		if _, err := uc.repo.GetRoom(ctx, *in.RoomID); err != nil {
			return nil, httperr.ErrBusiness("room_not_found")
		}
	}

	ap.Date = date
	ap.StartMin = int(start)
	ap.DurationMin = duration
	ap.SpecialtyID = in.SpecialtyID
	ap.StaffID = in.StaffID
	ap.RoomID = in.RoomID
	ap.DepositPaid = in.DepositPaid
	ap.DepositAmount = in.DepositAmount
	ap.Notes = in.Notes

	// La validación excluye al propio turno: editarlo en el mismo horario
	// nunca conflictúa consigo mismo.
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
