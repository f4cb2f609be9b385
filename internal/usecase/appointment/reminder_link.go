package appointment

import (
	"context"

	domain "github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/httperr"
	"github.com/angiescolor/salon-agenda/internal/whatsapp"
)

type ReminderLinkOutput struct {
	Link  string `json:"link"`
	Phone string `json:"phone"`
}

type GetReminderLink struct {
	repo      domain.Repository
	salonName string
}

func NewGetReminderLink(
	repo domain.Repository,
	salonName string,
) *GetReminderLink {
	return &GetReminderLink{
		repo:      repo,
		salonName: salonName,
	}
}

func (uc *GetReminderLink) Execute(
	ctx context.Context,
	appointmentID uint,
) (*ReminderLinkOutput, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.Status != string(domain.StatusActive) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	link, err := whatsapp.ReminderLink(
		ap.Client.Phone,
		ap.Client.Name,
		ap.Date,
		domain.TimeOfDay(ap.StartMin),
		uc.salonName,
	)
	if err != nil {
		return nil, err
	}

	return &ReminderLinkOutput{
		Link:  link,
		Phone: whatsapp.NormalizePhone(ap.Client.Phone),
	}, nil
}
