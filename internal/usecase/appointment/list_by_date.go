package appointment

import (
	"context"

	domain "github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/dto"
	"github.com/angiescolor/salon-agenda/internal/httperr"
	"github.com/angiescolor/salon-agenda/internal/validators"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	dateStr string,
	staffID *uint,
) ([]dto.AppointmentListDTO, error) {

	date, err := validators.ParseDate(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, date, staffID, nil)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, toListDTO(&appointments[i]))
	}

	return out, nil
}
