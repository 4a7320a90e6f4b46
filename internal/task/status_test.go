package task

import "testing"

func TestStatusFromInput(t *testing.T) {
	tests := []struct {
		input  string
		want   Status
		wantOK bool
	}{
		{"P", StatusPending, true},
		{"p", StatusPending, true},
		{" pendiente ", StatusPending, true},
		{"E", StatusInProgress, true},
		{"en curso", StatusInProgress, true},
		{"EN_CURSO", StatusInProgress, true},
		{"t", StatusFinished, true},
		{"Terminada", StatusFinished, true},
		{"c", StatusCancelled, true},
		{"CANCELADA", StatusCancelled, true},
		{"", StatusPending, false},
		{" ", StatusPending, false},
		{"X", StatusPending, false},
		{"PENDING", StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := StatusFromInput(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("status: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusStorageCodes(t *testing.T) {
	tests := []struct {
		code string
		want Status
	}{
		{"PENDING", StatusPending},
		{"IN-PROGRESS", StatusInProgress},
		{"FINISHED", StatusFinished},
		{"CANCELED", StatusCancelled},
		{"finished", StatusFinished},
		{"", StatusPending},
		{"DONE", StatusPending},
		{"CANCELLED", StatusPending},
	}

	for _, tt := range tests {
		if got := StatusFromStorage(tt.code); got != tt.want {
			t.Errorf("StatusFromStorage(%q): got %v, want %v", tt.code, got, tt.want)
		}
	}

	if got := Status(42).StorageCode(); got != "PENDING" {
		t.Errorf("unknown status storage code: got %q, want PENDING", got)
	}
}

func TestStatusRoundTripThroughStorage(t *testing.T) {
	for _, code := range []string{"P", "E", "T", "C"} {
		want, ok := StatusFromInput(code)
		if !ok {
			t.Fatalf("StatusFromInput(%q) did not match", code)
		}
		got := StatusFromStorage(want.StorageCode())
		if got != want {
			t.Errorf("%s: got %v after storage round trip, want %v", code, got, want)
		}
		if got.Code() != code {
			t.Errorf("%s: Code() = %q", code, got.Code())
		}
	}
}

func TestStatusLabels(t *testing.T) {
	want := map[Status]string{
		StatusPending:    "Pendiente",
		StatusInProgress: "En curso",
		StatusFinished:   "Terminada",
		StatusCancelled:  "Cancelada",
	}
	for status, label := range want {
		if status.Label() != label {
			t.Errorf("Label: got %q, want %q", status.Label(), label)
		}
	}
	var zero Status
	if zero != StatusPending {
		t.Errorf("zero value: got %v, want Pendiente", zero)
	}
}
