package appointment

import (
	"context"

	domain "github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/dto"
	"github.com/angiescolor/salon-agenda/internal/httperr"
	"github.com/angiescolor/salon-agenda/internal/validators"
)

// Etiquetas de día para la cabecera de la agenda (lunes = 0).
var dayNames = []string{
	"LUNES", "MARTES", "MIÉRCOLES", "JUEVES", "VIERNES", "SÁBADO", "DOMINGO",
}

type GetDayAgenda struct {
	repo domain.Repository
	grid domain.GridConfig
}

func NewGetDayAgenda(
	repo domain.Repository,
	grid domain.GridConfig,
) *GetDayAgenda {
	return &GetDayAgenda{
		repo: repo,
		grid: grid,
	}
}

// Execute proyecta los turnos vigentes del día sobre la grilla del salón,
// opcionalmente filtrados por profesional y/o sala. La vista se recalcula
// en cada pedido desde el estado actual de la base.
func (uc *GetDayAgenda) Execute(
	ctx context.Context,
	dateStr string,
	staffID *uint,
	roomID *uint,
) (*dto.DayAgendaDTO, error) {

	date, err := validators.ParseDate(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, date, staffID, roomID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.DayAppointment, 0, len(appointments))
	list := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		views = append(views, toDayAppointment(&appointments[i]))
		list = append(list, toListDTO(&appointments[i]))
	}

	grid := uc.grid.Grid()
	slots := domain.BuildDayView(grid, uc.grid.StepMin, views)

	// time.Weekday arranca en domingo; la agenda arranca en lunes.
	dayIdx := (int(date.Weekday()) + 6) % 7

	return &dto.DayAgendaDTO{
		Date:         date.Format("2006-01-02"),
		DayName:      dayNames[dayIdx],
		DateLabel:    date.Format("02/01/2006"),
		Grid:         slots,
		Appointments: list,
	}, nil
}
