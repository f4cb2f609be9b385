package whatsapp

import "strings"

// NormalizePhone convierte un teléfono cargado a mano en el identificador
// internacional que espera wa.me (solo dígitos, prefijo 549 para celulares
// argentinos). Devuelve "" cuando el número no se puede recuperar.
//
// Es una heurística para números argentinos, no una validación: reglas
// fijas aplicadas en orden, sin garantía de ida y vuelta.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	// Prefijo internacional "00" y luego el "0" de discado nacional.
	digits = strings.TrimPrefix(digits, "00")
	if strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}

	// "11 15 ...": el 15 de celular sobra en formato internacional.
	if strings.HasPrefix(digits, "1115") {
		digits = "11" + digits[4:]
	}

	switch {
	case strings.HasPrefix(digits, "549") && len(digits) >= 12:
		return digits
	case strings.HasPrefix(digits, "54") && !strings.HasPrefix(digits, "549"):
		return "549" + digits[2:]
	case strings.HasPrefix(digits, "9"):
		return "54" + digits
	case len(digits) == 10 && strings.HasPrefix(digits, "11"):
		return "549" + digits
	case len(digits) >= 10:
		if strings.HasPrefix(digits, "549") {
			return digits
		}
		return "549" + digits
	}

	return ""
}
