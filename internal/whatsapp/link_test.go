package whatsapp

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angiescolor/salon-agenda/internal/httperr"
)

func TestReminderLink(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	link, err := ReminderLink("011 15-4567-8901", "Marta", date, 600, "Angie's Color")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5491145678901?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)

	msg := parsed.Query().Get("text")
	assert.Contains(t, msg, "Marta")
	assert.Contains(t, msg, "Angie's Color")
	assert.Contains(t, msg, "14/03/2026")
	assert.Contains(t, msg, "10:00")
}

func TestReminderLink_UnrecoverablePhone(t *testing.T) {
	_, err := ReminderLink("x", "Marta", time.Now(), 600, "Angie's Color")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "no_reminder_available"))
}
