package schedule

import (
	"context"
	"time"

	"github.com/angiescolor/salon-agenda/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	TouchClientLastVisit(
		ctx context.Context,
		clientID uint,
		visit time.Time,
	) error

	// -------- Reference entities --------
	GetStaff(
		ctx context.Context,
		id uint,
	) (*models.Staff, error)

	GetSpecialty(
		ctx context.Context,
		id uint,
	) (*models.Specialty, error)

	GetRoom(
		ctx context.Context,
		id uint,
	) (*models.Room, error)

	// -------- Appointment (create / edit, conflict-checked) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Day view --------
	ListAppointmentsForDay(
		ctx context.Context,
		date time.Time,
		staffID *uint,
		roomID *uint,
	) ([]models.Appointment, error)
}
