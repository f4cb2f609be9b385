package appointment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angiescolor/salon-agenda/internal/httperr"
)

func TestGetReminderLink(t *testing.T) {
	repo := newFakeRepo()
	repo.addStaff(1, "Angie")
	repo.addClient(7, "Marta", "011 15-4567-8901")

	createUC := NewCreateAppointment(repo, testGrid(), testDispatcher())
	linkUC := NewGetReminderLink(repo, "Angie's Color")

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		Date: "2026-03-14", Time: "10:00", DurationMin: 60,
		ClientID: 7, StaffID: uintPtr(1),
	})
	require.NoError(t, err)

	out, err := linkUC.Execute(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "5491145678901", out.Phone)
	assert.True(t, strings.HasPrefix(out.Link, "https://wa.me/5491145678901?text="))
}

func TestGetReminderLink_NoPhone(t *testing.T) {
	repo := newFakeRepo()
	repo.addStaff(1, "Angie")
	repo.addClient(7, "Marta", "")

	createUC := NewCreateAppointment(repo, testGrid(), testDispatcher())
	linkUC := NewGetReminderLink(repo, "Angie's Color")

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		Date: "2026-03-14", Time: "10:00", ClientID: 7, StaffID: uintPtr(1),
	})
	require.NoError(t, err)

	_, err = linkUC.Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "no_reminder_available"))
}

func TestGetReminderLink_Cancelled(t *testing.T) {
	repo := newFakeRepo()
	repo.addStaff(1, "Angie")
	repo.addClient(7, "Marta", "011 15-4567-8901")

	createUC := NewCreateAppointment(repo, testGrid(), testDispatcher())
	cancelUC := NewCancelAppointment(repo, testDispatcher())
	linkUC := NewGetReminderLink(repo, "Angie's Color")

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		Date: "2026-03-14", Time: "10:00", ClientID: 7, StaffID: uintPtr(1),
	})
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), ap.ID)
	require.NoError(t, err)

	_, err = linkUC.Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestMarkReminderSent(t *testing.T) {
	repo := newFakeRepo()
	repo.addStaff(1, "Angie")

	createUC := NewCreateAppointment(repo, testGrid(), testDispatcher())
	markUC := NewMarkReminderSent(repo, testDispatcher())

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		Date: "2026-03-14", Time: "10:00", ClientName: "Marta", StaffID: uintPtr(1),
	})
	require.NoError(t, err)
	assert.False(t, ap.ReminderSent)

	marked, err := markUC.Execute(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.True(t, marked.ReminderSent)
	require.NotNil(t, marked.ReminderSentAt)

	stored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.True(t, stored.ReminderSent)
}

func TestMarkReminderSent_NotFound(t *testing.T) {
	repo := newFakeRepo()
	markUC := NewMarkReminderSent(repo, testDispatcher())

	_, err := markUC.Execute(context.Background(), 404)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
