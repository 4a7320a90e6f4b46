package store

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/nibzard/tareas/internal/task"
)

// timestampLayout matches the millisecond UTC instants of the original file format.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// record is the persisted shape of one task.
type record struct {
	Titulo        string         `json:"titulo"`
	Descripcion   *string        `json:"descripcion"`
	Estado        string         `json:"estado"`
	Creacion      string         `json:"creacion"`
	UltimaEdicion *string        `json:"ultimaEdicion"`
	Vencimiento   *string        `json:"vencimiento"`
	Dificultad    difficultyCode `json:"dificultad"`
}

// difficultyCode accepts a JSON number or a numeric string. Anything else
// decodes to 0, which maps to the default difficulty.
type difficultyCode int

func (d *difficultyCode) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			*d = 0
			return nil
		}
		f = parsed
	default:
		*d = 0
		return nil
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		*d = 0
		return nil
	}
	*d = difficultyCode(f)
	return nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func toRecord(t *task.Task) record {
	r := record{
		Titulo:     t.Title(),
		Estado:     t.Status().StorageCode(),
		Creacion:   formatTimestamp(t.CreatedAt()),
		Dificultad: difficultyCode(t.Difficulty().StorageCode()),
	}
	if desc, ok := t.Description(); ok {
		r.Descripcion = &desc
	}
	if updated := t.UpdatedAt(); !updated.IsZero() {
		s := formatTimestamp(updated)
		r.UltimaEdicion = &s
	}
	if due, ok := t.DueAt(); ok {
		s := formatTimestamp(due)
		r.Vencimiento = &s
	}
	return r
}

func (r record) toTask() (*task.Task, error) {
	opts := []task.Option{
		task.WithStatus(task.StatusFromStorage(r.Estado)),
		task.WithDifficulty(task.DifficultyFromStorage(int(r.Dificultad))),
		task.WithCreatedAt(r.Creacion),
	}
	if r.Descripcion != nil {
		opts = append(opts, task.WithDescription(*r.Descripcion))
	}
	if r.UltimaEdicion != nil {
		opts = append(opts, task.WithUpdatedAt(*r.UltimaEdicion))
	}
	if r.Vencimiento != nil {
		opts = append(opts, task.WithDue(*r.Vencimiento))
	}
	return task.New(r.Titulo, opts...)
}
