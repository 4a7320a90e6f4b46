package task

import "strings"

// Status is the lifecycle tag of a task. The zero value is StatusPending.
type Status uint8

const (
	StatusPending Status = iota
	StatusInProgress
	StatusFinished
	StatusCancelled
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusFinished, StatusCancelled}

type statusInfo struct {
	code    string
	label   string
	storage string
}

var statusTable = [...]statusInfo{
	StatusPending:    {code: "P", label: "Pendiente", storage: "PENDING"},
	StatusInProgress: {code: "E", label: "En curso", storage: "IN-PROGRESS"},
	StatusFinished:   {code: "T", label: "Terminada", storage: "FINISHED"},
	StatusCancelled:  {code: "C", label: "Cancelada", storage: "CANCELED"},
}

func (s Status) info() statusInfo {
	if int(s) < len(statusTable) {
		return statusTable[s]
	}
	return statusTable[StatusPending]
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	return int(s) < len(statusTable)
}

// Code returns the single-letter input code.
func (s Status) Code() string { return s.info().code }

// Label returns the display label.
func (s Status) Label() string { return s.info().label }

// String returns the display label.
func (s Status) String() string { return s.Label() }

// StorageCode returns the persisted code. Unknown values map to "PENDING".
func (s Status) StorageCode() string { return s.info().storage }

// StatusFromInput translates a user-typed code or name, ignoring case and
// surrounding whitespace. It reports false for anything it does not know,
// including empty input.
func StatusFromInput(value string) (Status, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "P", "PENDIENTE":
		return StatusPending, true
	case "E", "EN CURSO", "EN_CURSO":
		return StatusInProgress, true
	case "T", "TERMINADA":
		return StatusFinished, true
	case "C", "CANCELADA":
		return StatusCancelled, true
	}
	return StatusPending, false
}

// StatusFromStorage translates a persisted code. Unknown or empty codes
// map to StatusPending.
func StatusFromStorage(code string) Status {
	switch strings.ToUpper(code) {
	case "IN-PROGRESS":
		return StatusInProgress
	case "FINISHED":
		return StatusFinished
	case "CANCELED":
		return StatusCancelled
	default:
		return StatusPending
	}
}
