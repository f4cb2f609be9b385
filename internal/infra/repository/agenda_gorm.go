package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/httperr"
	"github.com/angiescolor/salon-agenda/internal/models"
)

type AgendaGormRepository struct {
	db *gorm.DB
}

func NewAgendaGormRepository(db *gorm.DB) *AgendaGormRepository {
	return &AgendaGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AgendaGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AgendaGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	if phone != "" {
		var client models.Client
		err := r.db.WithContext(ctx).
			Where("phone = ?", phone).
			First(&client).Error

		if err == nil {
			return &client, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	client := models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *AgendaGormRepository) TouchClientLastVisit(
	ctx context.Context,
	clientID uint,
	visit time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Update("last_visit", visit).Error
}

// --------------------------------------------------
// Reference entities
// --------------------------------------------------

func (r *AgendaGormRepository) GetStaff(
	ctx context.Context,
	id uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *AgendaGormRepository) GetSpecialty(
	ctx context.Context,
	id uint,
) (*models.Specialty, error) {

	var specialty models.Specialty
	if err := r.db.WithContext(ctx).First(&specialty, id).Error; err != nil {
		return nil, err
	}
	return &specialty, nil
}

func (r *AgendaGormRepository) GetRoom(
	ctx context.Context,
	id uint,
) (*models.Room, error) {

	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// --------------------------------------------------
// Appointment (create / edit)
// --------------------------------------------------

// CreateAppointment corre el chequeo de superposición y el insert dentro
// de la misma transacción, con los turnos del día tomados FOR UPDATE.
// La constraint de exclusión de la tabla queda como respaldo.
func (r *AgendaGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap, 0); err != nil {
			return err
		}
		return translateConflict(tx.Create(ap).Error)
	})
}

// UpdateAppointment valida la edición contra el resto del día,
// excluyendo al propio turno.
func (r *AgendaGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap, ap.ID); err != nil {
			return err
		}
		return translateConflict(tx.Omit(clause.Associations).Save(ap).Error)
	})
}

func assertSlotFree(tx *gorm.DB, ap *models.Appointment, excludeID uint) error {
	var sameDay []models.Appointment
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "start_min", "duration_min", "staff_id", "room_id", "status").
		Where("date = ? AND status = ?", ap.Date, string(domain.StatusActive)).
		Find(&sameDay).Error; err != nil {
		return err
	}

	existing := make([]domain.Booking, 0, len(sameDay))
	for i := range sameDay {
		existing = append(existing, domain.BookingOf(&sameDay[i]))
	}

	if free, _ := domain.IsFree(domain.BookingOf(ap), existing, excludeID); !free {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

// translateConflict mapea la violación de la constraint de exclusión
// (carrera perdida contra otra transacción) al mismo error de negocio.
func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AgendaGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Specialty").
		Preload("Staff").
		Preload("Room").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AgendaGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
}

// --------------------------------------------------
// Day view
// --------------------------------------------------

func (r *AgendaGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	date time.Time,
	staffID *uint,
	roomID *uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Specialty").
		Preload("Staff").
		Preload("Room").
		Where("date = ? AND status = ?", date, string(domain.StatusActive))

	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	}
	if roomID != nil {
		q = q.Where("room_id = ?", *roomID)
	}

	var apps []models.Appointment
	if err := q.
		Order("start_min ASC").
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AgendaGormRepository)(nil)
