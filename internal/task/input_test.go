package task

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFromInputDefaults(t *testing.T) {
	tk, err := FromInput("  Leer  ", "", "", "", "")
	if err != nil {
		t.Fatalf("FromInput: %v", err)
	}
	if tk.Title() != "Leer" {
		t.Errorf("Title: got %q, want Leer", tk.Title())
	}
	if tk.Status() != StatusPending || tk.Difficulty() != DifficultyEasy {
		t.Errorf("defaults: got %v/%v", tk.Status(), tk.Difficulty())
	}
	if _, ok := tk.Description(); ok {
		t.Error("blank description should be absent")
	}
	if _, ok := tk.DueAt(); ok {
		t.Error("blank due date should be absent")
	}
}

func TestFromInputValues(t *testing.T) {
	tk, err := FromInput("Pasear al perro", "Ejercitar", "e", "D", "01/12/2025 18:00")
	if err != nil {
		t.Fatalf("FromInput: %v", err)
	}
	if tk.Status() != StatusInProgress {
		t.Errorf("Status: got %v, want En curso", tk.Status())
	}
	if tk.Difficulty() != DifficultyHard {
		t.Errorf("Difficulty: got %v, want Difícil", tk.Difficulty())
	}
	due, ok := tk.DueAt()
	want := time.Date(2025, time.December, 1, 18, 0, 0, 0, time.Local)
	if !ok || !due.Equal(want) {
		t.Errorf("DueAt: got %v (%v), want %v", due, ok, want)
	}
}

func TestFromInputErrors(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		desc       string
		status     string
		difficulty string
		due        string
		want       error
	}{
		{"empty title", "   ", "", "", "", "", ErrInvalidTitle},
		{"long title", strings.Repeat("a", 101), "", "", "", "", ErrInvalidTitle},
		{"bad status", "x", "", "Z", "", "", ErrInvalidStatus},
		{"bad difficulty", "x", "", "", "4", "", ErrInvalidDifficulty},
		{"bad due date", "x", "", "", "", "mañana", ErrInvalidDueDate},
		{"long description", "x", strings.Repeat("d", 501), "", "", "", ErrInvalidDescription},
		{"title checked first", "", "", "Z", "4", "nope", ErrInvalidTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromInput(tt.title, tt.desc, tt.status, tt.difficulty, tt.due)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error %T is not a *ValidationError", err)
			}
		})
	}
}
