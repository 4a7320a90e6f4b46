package task

import (
	"fmt"
	"strings"
)

// Difficulty is the effort tag of a task. The zero value is DifficultyEasy.
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists every difficulty in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

type difficultyInfo struct {
	code  int
	label string
	stars string
}

var difficultyTable = [...]difficultyInfo{
	DifficultyEasy:   {code: 1, label: "Fácil", stars: "★☆☆"},
	DifficultyMedium: {code: 2, label: "Medio", stars: "★★☆"},
	DifficultyHard:   {code: 3, label: "Difícil", stars: "★★★"},
}

func (d Difficulty) info() difficultyInfo {
	if int(d) < len(difficultyTable) {
		return difficultyTable[d]
	}
	return difficultyTable[DifficultyEasy]
}

// Valid reports whether d is one of the three known difficulties.
func (d Difficulty) Valid() bool {
	return int(d) < len(difficultyTable)
}

// Code returns the numeric code (1, 2 or 3).
func (d Difficulty) Code() int { return d.info().code }

// Label returns the display label.
func (d Difficulty) Label() string { return d.info().label }

// Stars returns the star rating, e.g. "★★☆".
func (d Difficulty) Stars() string { return d.info().stars }

// String returns the label followed by the star rating.
func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%s)", d.Label(), d.Stars())
}

// StorageCode returns the persisted number. Unknown values map to 1.
func (d Difficulty) StorageCode() int { return d.info().code }

// DifficultyFromInput translates "1"/"2"/"3", F/M/D or the full name, with
// or without accents, ignoring case. It reports false for anything else.
func DifficultyFromInput(value string) (Difficulty, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "1", "F", "FACIL", "FÁCIL":
		return DifficultyEasy, true
	case "2", "M", "MEDIO":
		return DifficultyMedium, true
	case "3", "D", "DIFICIL", "DIFÍCIL":
		return DifficultyHard, true
	}
	return DifficultyEasy, false
}

// DifficultyFromStorage translates a persisted number. Anything outside
// 1..3 maps to DifficultyEasy.
func DifficultyFromStorage(code int) Difficulty {
	switch code {
	case 2:
		return DifficultyMedium
	case 3:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}
