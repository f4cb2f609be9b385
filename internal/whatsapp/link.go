package whatsapp

import (
	"fmt"
	"net/url"
	"time"

	"github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/httperr"
)

// ReminderLink arma el deep link de WhatsApp con el recordatorio ya
// escrito. El mensaje no se envía: abrirlo y mandarlo es acción manual.
func ReminderLink(
	rawPhone string,
	clientName string,
	date time.Time,
	start schedule.TimeOfDay,
	salonName string,
) (string, error) {

	phone := NormalizePhone(rawPhone)
	if phone == "" {
		return "", httperr.ErrBusiness("no_reminder_available")
	}

	msg := fmt.Sprintf(
		"Hola %s! Te recordamos tu turno en %s el %s a las %s. ¡Te esperamos!",
		clientName,
		salonName,
		date.Format("02/01/2006"),
		start.String(),
	)

	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(msg), nil
}
