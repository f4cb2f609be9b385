package schedule

import "testing"

func uintPtr(v uint) *uint { return &v }

func TestOverlaps_Symmetry(t *testing.T) {
	cases := []struct {
		aStart TimeOfDay
		aDur   int
		bStart TimeOfDay
		bDur   int
		want   bool
	}{
		{600, 60, 630, 30, true},  // 10:00+60 vs 10:30+30
		{600, 30, 630, 30, false}, // contiguos, semiabierto
		{600, 60, 600, 60, true},
		{600, 15, 610, 15, true},
		{480, 30, 540, 30, false},
	}

	for _, tc := range cases {
		got := Overlaps(tc.aStart, tc.aDur, tc.bStart, tc.bDur)
		if got != tc.want {
			t.Fatalf("Overlaps(%s+%d, %s+%d) = %v, want %v",
				tc.aStart, tc.aDur, tc.bStart, tc.bDur, got, tc.want)
		}
		if rev := Overlaps(tc.bStart, tc.bDur, tc.aStart, tc.aDur); rev != got {
			t.Fatalf("symmetry broken for %s+%d vs %s+%d", tc.aStart, tc.aDur, tc.bStart, tc.bDur)
		}
	}
}

func TestOverlaps_Reflexive(t *testing.T) {
	if !Overlaps(600, 30, 600, 30) {
		t.Fatal("an interval with positive duration must overlap itself")
	}
}

func TestIsFree_SameStaffConflict(t *testing.T) {
	existing := []Booking{
		{ID: 1, Start: 600, DurationMin: 60, Scope: Scope{StaffID: uintPtr(1)}},
	}

	candidate := Booking{Start: 630, DurationMin: 30, Scope: Scope{StaffID: uintPtr(1)}}
	if free, conflict := IsFree(candidate, existing, 0); free || conflict == nil {
		t.Fatal("expected conflict with same staff at 10:30")
	}

	other := Booking{Start: 630, DurationMin: 30, Scope: Scope{StaffID: uintPtr(2)}}
	if free, _ := IsFree(other, existing, 0); !free {
		t.Fatal("expected no conflict with different staff")
	}
}

func TestIsFree_ScopelessCollidesWithAll(t *testing.T) {
	existing := []Booking{
		{ID: 1, Start: 600, DurationMin: 60, Scope: Scope{StaffID: uintPtr(1)}},
	}

	// Sin profesional asignado se chequea contra todos los turnos del día.
	candidate := Booking{Start: 630, DurationMin: 30}
	if free, _ := IsFree(candidate, existing, 0); free {
		t.Fatal("expected scope-less candidate to conflict")
	}
}

func TestIsFree_RoomDimension(t *testing.T) {
	existing := []Booking{
		{ID: 1, Start: 600, DurationMin: 60, Scope: Scope{StaffID: uintPtr(1), RoomID: uintPtr(1)}},
	}

	sameStaffOtherRoom := Booking{
		Start: 630, DurationMin: 30,
		Scope: Scope{StaffID: uintPtr(1), RoomID: uintPtr(2)},
	}
	if free, _ := IsFree(sameStaffOtherRoom, existing, 0); !free {
		t.Fatal("expected no conflict: same staff but different room")
	}

	sameStaffNoRoom := Booking{
		Start: 630, DurationMin: 30,
		Scope: Scope{StaffID: uintPtr(1)},
	}
	if free, _ := IsFree(sameStaffNoRoom, existing, 0); free {
		t.Fatal("expected conflict: nil room matches any room")
	}
}

func TestIsFree_ExcludeSelf(t *testing.T) {
	existing := []Booking{
		{ID: 7, Start: 600, DurationMin: 60, Scope: Scope{StaffID: uintPtr(1)}},
	}

	// Editar el turno 7 en su mismo horario nunca conflictúa consigo mismo.
	candidate := Booking{ID: 7, Start: 600, DurationMin: 60, Scope: Scope{StaffID: uintPtr(1)}}
	if free, _ := IsFree(candidate, existing, 7); !free {
		t.Fatal("expected edit against itself to be free")
	}
	if free, _ := IsFree(candidate, existing, 0); free {
		t.Fatal("expected conflict without exclusion")
	}
}

func TestIsFree_CancelledIgnored(t *testing.T) {
	existing := []Booking{
		{ID: 1, Start: 600, DurationMin: 60, Scope: Scope{StaffID: uintPtr(1)}, Cancelled: true},
	}

	candidate := Booking{Start: 600, DurationMin: 60, Scope: Scope{StaffID: uintPtr(1)}}
	if free, _ := IsFree(candidate, existing, 0); !free {
		t.Fatal("expected cancelled appointment to be ignored")
	}
}
