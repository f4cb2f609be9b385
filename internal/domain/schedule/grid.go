package schedule

// GridConfig define la ventana de atención del salón.
type GridConfig struct {
	Open    TimeOfDay
	Close   TimeOfDay
	StepMin int
}

// BuildGrid genera la grilla de horarios reservables del día, de Open a
// Close cada StepMin minutos. La marca de cierre se incluye siempre,
// aunque no sea un horario reservable convencional.
func BuildGrid(open, close TimeOfDay, stepMin int) []TimeOfDay {
	if stepMin <= 0 || close < open {
		return nil
	}

	var grid []TimeOfDay
	for cur := open; cur <= close; cur = cur.Add(stepMin) {
		grid = append(grid, cur)
	}
	return grid
}

func (g GridConfig) Grid() []TimeOfDay {
	return BuildGrid(g.Open, g.Close, g.StepMin)
}

// Contains informa si [start, start+durationMin) entra en la ventana.
func (g GridConfig) Contains(start TimeOfDay, durationMin int) bool {
	return start >= g.Open && start.Add(durationMin) <= g.Close
}
