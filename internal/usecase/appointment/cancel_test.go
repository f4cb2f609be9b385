package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/httperr"
)

func TestCancelAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.addStaff(1, "Angie")

	createUC := NewCreateAppointment(repo, testGrid(), testDispatcher())
	cancelUC := NewCancelAppointment(repo, testDispatcher())

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		Date: "2026-03-14", Time: "10:00", DurationMin: 60,
		ClientName: "Marta", StaffID: uintPtr(1),
	})
	require.NoError(t, err)

	cancelled, err := cancelUC.Execute(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
}

func TestCancelAppointment_Twice(t *testing.T) {
	repo := newFakeRepo()
	repo.addStaff(1, "Angie")

	createUC := NewCreateAppointment(repo, testGrid(), testDispatcher())
	cancelUC := NewCancelAppointment(repo, testDispatcher())

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		Date: "2026-03-14", Time: "10:00", ClientName: "Marta", StaffID: uintPtr(1),
	})
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), ap.ID)
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

// Un turno cancelado libera su franja: otro cliente puede reservarla.
func TestCancelAppointment_FreesTheSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.addStaff(1, "Angie")

	createUC := NewCreateAppointment(repo, testGrid(), testDispatcher())
	cancelUC := NewCancelAppointment(repo, testDispatcher())

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		Date: "2026-03-14", Time: "10:00", DurationMin: 60,
		ClientName: "Marta", StaffID: uintPtr(1),
	})
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), ap.ID)
	require.NoError(t, err)

	_, err = createUC.Execute(context.Background(), CreateAppointmentInput{
		Date: "2026-03-14", Time: "10:00", DurationMin: 60,
		ClientName: "Lucía", StaffID: uintPtr(1),
	})
	assert.NoError(t, err)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := newFakeRepo()
	cancelUC := NewCancelAppointment(repo, testDispatcher())

	_, err := cancelUC.Execute(context.Background(), 99)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
