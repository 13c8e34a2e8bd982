package reports

import "testing"

func TestDayRange(t *testing.T) {
	cases := []struct {
		day   string
		start string
		next  string
	}{
		{"2024-04-15", "2024-04-15 00:00:00", "2024-04-16 00:00:00"},
		{"2024-12-31", "2024-12-31 00:00:00", "2025-01-01 00:00:00"},
		{"2024-02-29", "2024-02-29 00:00:00", "2024-03-01 00:00:00"},
	}
	for _, tc := range cases {
		start, next, err := dayRange(tc.day)
		if err != nil {
			t.Fatalf("%s: %v", tc.day, err)
		}
		// half-open upper bound so DATETIME(6) instants like 23:59:59.5 stay inside
		if start != tc.start || next != tc.next {
			t.Errorf("%s: got [%s, %s), want [%s, %s)", tc.day, start, next, tc.start, tc.next)
		}
	}

	if _, _, err := dayRange("31/12/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}
}
