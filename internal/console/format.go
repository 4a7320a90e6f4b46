package console

import (
	"errors"
	"time"

	"github.com/nibzard/tareas/internal/task"
)

// DateLayout is how dates are shown to the user.
const DateLayout = "2006-01-02 15:04"

// NoData is shown for a missing value.
const NoData = "Sin datos"

// NoDescription is shown for a task without description.
const NoDescription = "(Sin descripción)"

// FormatDate renders t in local time, or NoData when ok is false.
func FormatDate(t time.Time, ok bool) string {
	if !ok || t.IsZero() {
		return NoData
	}
	return t.Local().Format(DateLayout)
}

// FormatDescription returns the description or NoDescription.
func FormatDescription(t *task.Task) string {
	if desc, ok := t.Description(); ok {
		return desc
	}
	return NoDescription
}

// Message returns the user-facing Spanish text for err.
func Message(err error) string {
	switch {
	case errors.Is(err, task.ErrInvalidTitle):
		return "Título inválido: obligatorio, 1..100 caracteres."
	case errors.Is(err, task.ErrInvalidDescription):
		return "Descripción inválida: máximo 500 caracteres."
	case errors.Is(err, task.ErrInvalidStatus):
		return "Estado inválido. Use P/E/T/C o su nombre."
	case errors.Is(err, task.ErrInvalidDifficulty):
		return "Dificultad inválida. Use 1/2/3 o F/M/D."
	case errors.Is(err, task.ErrInvalidDueDate):
		return "Fecha de vencimiento inválida."
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}
