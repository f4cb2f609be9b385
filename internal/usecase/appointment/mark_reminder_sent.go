package appointment

import (
	"context"
	"time"

	"github.com/angiescolor/salon-agenda/internal/audit"
	domain "github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/httperr"
	"github.com/angiescolor/salon-agenda/internal/models"
)

type MarkReminderSent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkReminderSent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkReminderSent {
	return &MarkReminderSent{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MarkReminderSent) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	domain.MarkReminderSent(ap, time.Now())

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reminder_marked_sent",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
