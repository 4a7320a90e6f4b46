package task

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	dec1 := time.Date(2025, time.December, 1, 18, 0, 0, 0, time.Local)
	midnight := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{"iso with space", "2025-12-01 18:00", dec1, true},
		{"iso with T", "2025-12-01T18:00", dec1, true},
		{"iso date only", "2025-12-01", midnight, true},
		{"day month year with time", "01/12/2025 18:00", dec1, true},
		{"day month year", "01/12/2025", midnight, true},
		{"surrounding space", "  01/12/2025 18:00  ", dec1, true},
		{"rfc3339 instant", "2025-12-01T21:00:00.000Z", time.Date(2025, time.December, 1, 21, 0, 0, 0, time.UTC), true},
		{"garbage", "not-a-date", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"blank", "   ", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v (parsed %v)", ok, tt.wantOK, got)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDateDayBeforeMonth(t *testing.T) {
	iso, ok := ParseDate("2025-12-01 18:00")
	if !ok {
		t.Fatal("iso date did not parse")
	}
	dmy, ok := ParseDate("01/12/2025 18:00")
	if !ok {
		t.Fatal("day/month/year date did not parse")
	}
	if !iso.Equal(dmy) {
		t.Errorf("got %v and %v, want the same instant", iso, dmy)
	}
	if dmy.Month() != time.December || dmy.Day() != 1 {
		t.Errorf("got %v, want 1 December", dmy)
	}
}

func TestLocalDateRejectsOverflow(t *testing.T) {
	tests := []struct {
		y, mo, d, h, mi string
	}{
		{"2025", "02", "30", "", ""},
		{"2025", "13", "01", "", ""},
		{"2025", "12", "01", "24", "00"},
		{"2025", "12", "01", "10", "60"},
	}
	for _, tt := range tests {
		if got, ok := localDate(tt.y, tt.mo, tt.d, tt.h, tt.mi); ok {
			t.Errorf("localDate(%v): got %v, want rejection", tt, got)
		}
	}
}
