package schedule

// ===============================
// Chequeo de superposición
// ===============================

// Scope identifica con qué recursos compite un turno: profesional y sala.
// Un turno sin profesional asignado compite contra todos los turnos del día.
type Scope struct {
	StaffID *uint
	RoomID  *uint
}

// Booking es la vista mínima de un turno que necesita el validador.
// Todos los turnos comparados pertenecen al mismo día.
type Booking struct {
	ID          uint
	Start       TimeOfDay
	DurationMin int
	Scope       Scope
	Cancelled   bool
}

func (b Booking) End() TimeOfDay {
	return b.Start.Add(b.DurationMin)
}

// Overlaps compara dos intervalos semiabiertos [start, start+dur).
func Overlaps(aStart TimeOfDay, aDur int, bStart TimeOfDay, bDur int) bool {
	return aStart < bStart.Add(bDur) && bStart < aStart.Add(aDur)
}

// ScopesCollide decide si dos turnos del mismo día compiten por recursos.
// Sin profesional no hay alcance: colisiona con todo. La sala en NULL
// también matchea cualquier sala.
func ScopesCollide(a, b Scope) bool {
	if a.StaffID == nil || b.StaffID == nil {
		return true
	}
	if *a.StaffID != *b.StaffID {
		return false
	}
	if a.RoomID == nil || b.RoomID == nil {
		return true
	}
	return *a.RoomID == *b.RoomID
}

// IsFree valida que candidate no se superponga con ningún turno vigente de
// existing. Los cancelados no cuentan, y excludeID permite validar la
// edición de un turno contra sí mismo. Devuelve el primer conflicto.
func IsFree(candidate Booking, existing []Booking, excludeID uint) (bool, *Booking) {
	for i := range existing {
		other := &existing[i]

		if other.Cancelled {
			continue
		}
		if excludeID != 0 && other.ID == excludeID {
			continue
		}
		if !ScopesCollide(candidate.Scope, other.Scope) {
			continue
		}
		if Overlaps(candidate.Start, candidate.DurationMin, other.Start, other.DurationMin) {
			return false, other
		}
	}
	return true, nil
}
