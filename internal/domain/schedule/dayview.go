package schedule

import "sort"

// ===============================
// Proyección de la grilla del día
// ===============================

type SlotState string

const (
	SlotFree     SlotState = "free"
	SlotOccupied SlotState = "occupied"
	SlotBlocked  SlotState = "blocked"
)

// DayAppointment es la vista de un turno lista para pintar en la grilla.
type DayAppointment struct {
	ID          uint      `json:"id"`
	Start       TimeOfDay `json:"start"`
	DurationMin int       `json:"duration_min"`
	Cancelled   bool      `json:"-"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	SpecialtyName  string `json:"specialty_name"`
	SpecialtyColor string `json:"specialty_color"`

	StaffName string `json:"staff_name"`
	RoomName  string `json:"room_name"`

	DepositPaid   bool `json:"deposit_paid"`
	DepositAmount int  `json:"deposit_amount"`

	Notes        string `json:"notes"`
	ReminderSent bool   `json:"reminder_sent"`
}

// Slot es una posición de la grilla con su estado.
// BlockedBy referencia al turno dueño cuando el estado es blocked.
type Slot struct {
	Time        TimeOfDay       `json:"time"`
	State       SlotState       `json:"state"`
	Appointment *DayAppointment `json:"appointment,omitempty"`
	BlockedBy   uint            `json:"blocked_by,omitempty"`
}

// BuildDayView proyecta los turnos de un día sobre la grilla.
//
// Los turnos se recorren ordenados por inicio (desempate por id) y el
// primero que escribe una celda gana: si los datos ya traen una doble
// reserva la vista degrada sin pisar nada. Un turno más corto que el paso
// ocupa igual su celda de inicio; los pasos siguientes dentro de la
// duración quedan bloqueados. Un turno cuyo inicio no cae exacto en la
// grilla no se pinta.
func BuildDayView(grid []TimeOfDay, stepMin int, appts []DayAppointment) []Slot {
	slots := make([]Slot, len(grid))
	index := make(map[TimeOfDay]int, len(grid))
	for i, t := range grid {
		slots[i] = Slot{Time: t, State: SlotFree}
		index[t] = i
	}

	active := make([]DayAppointment, 0, len(appts))
	for _, a := range appts {
		if !a.Cancelled {
			active = append(active, a)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].Start != active[j].Start {
			return active[i].Start < active[j].Start
		}
		return active[i].ID < active[j].ID
	})

	for i := range active {
		a := active[i]

		pos, onGrid := index[a.Start]
		if !onGrid {
			continue
		}
		if slots[pos].State != SlotFree {
			continue
		}

		slots[pos].State = SlotOccupied
		slots[pos].Appointment = &active[i]

		span := 1
		if stepMin > 0 && a.DurationMin/stepMin > 1 {
			span = a.DurationMin / stepMin
		}

		for k := 1; k < span; k++ {
			p, ok := index[a.Start.Add(stepMin*k)]
			if !ok {
				break
			}
			if slots[p].State != SlotFree {
				continue
			}
			slots[p].State = SlotBlocked
			slots[p].BlockedBy = a.ID
		}
	}

	return slots
}
