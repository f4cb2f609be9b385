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

type CreateAppointmentInput struct {
	Date string
	Time string

	DurationMin int

	// Cliente existente por id, o alta por nombre/teléfono.
	ClientID    uint
	ClientName  string
	ClientPhone string
	ClientEmail string

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

type CreateAppointment struct {
	repo  domain.Repository
	grid  domain.GridConfig
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	grid domain.GridConfig,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		grid:  grid,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

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
		duration = uc.grid.StepMin
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

	var client *models.Client
	if in.ClientID != 0 {
		client, err = uc.repo.GetClient(ctx, in.ClientID)
		if err != nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
	} else {
		if in.ClientName == "" {
			return nil, httperr.ErrBusiness("missing_client")
		}
		client, err = uc.repo.GetOrCreateClient(
			ctx,
			in.ClientName,
			in.ClientPhone,
			in.ClientEmail,
		)
		if err != nil {
			return nil, err
		}
	}

	ap := &models.Appointment{
		Date:          date,
		StartMin:      int(start),
		DurationMin:   duration,
		ClientID:      client.ID,
		SpecialtyID:   in.SpecialtyID,
		StaffID:       in.StaffID,
		RoomID:        in.RoomID,
		Status:        string(domain.InitialStatus()),
		DepositPaid:   in.DepositPaid,
		DepositAmount: in.DepositAmount,
		Notes:         in.Notes,
	}

	// Chequeo de superposición e insert en una sola transacción.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.repo.TouchClientLastVisit(ctx, client.ID, date); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
