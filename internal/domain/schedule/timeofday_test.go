package schedule

import (
	"encoding/json"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("08:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tod != 510 {
		t.Fatalf("expected 510 minutes, got %d", tod)
	}
	if tod.String() != "08:30" {
		t.Fatalf("expected 08:30, got %s", tod)
	}

	for _, bad := range []string{"", "25:00", "08:61", "8", "ocho"} {
		if _, err := ParseTimeOfDay(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	b, err := json.Marshal(TimeOfDay(600))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"10:00"` {
		t.Fatalf("expected \"10:00\", got %s", b)
	}

	var tod TimeOfDay
	if err := json.Unmarshal([]byte(`"19:00"`), &tod); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tod != 1140 {
		t.Fatalf("expected 1140, got %d", tod)
	}
}
