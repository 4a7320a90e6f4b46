package console

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nibzard/tareas/internal/task"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 9, 5, 0, 0, time.Local)
	if got := FormatDate(d, true); got != "2025-03-07 09:05" {
		t.Errorf("got %q", got)
	}
	if got := FormatDate(d, false); got != NoData {
		t.Errorf("absent date: got %q, want %q", got, NoData)
	}
	if got := FormatDate(time.Time{}, true); got != NoData {
		t.Errorf("zero date: got %q, want %q", got, NoData)
	}
}

func TestFormatDescription(t *testing.T) {
	with, _ := task.New("a", task.WithDescription("algo"))
	without, _ := task.New("b")
	if got := FormatDescription(with); got != "algo" {
		t.Errorf("got %q", got)
	}
	if got := FormatDescription(without); got != NoDescription {
		t.Errorf("got %q, want %q", got, NoDescription)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{task.ErrInvalidTitle, "Título inválido: obligatorio, 1..100 caracteres."},
		{&task.ValidationError{Field: "status", Err: task.ErrInvalidStatus}, "Estado inválido. Use P/E/T/C o su nombre."},
		{fmt.Errorf("wrapped: %w", task.ErrInvalidDueDate), "Fecha de vencimiento inválida."},
		{task.ErrInvalidDifficulty, "Dificultad inválida. Use 1/2/3 o F/M/D."},
		{task.ErrInvalidDescription, "Descripción inválida: máximo 500 caracteres."},
		{errors.New("disk full"), "disk full"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := Message(tt.err); got != tt.want {
			t.Errorf("Message(%v): got %q, want %q", tt.err, got, tt.want)
		}
	}
}
