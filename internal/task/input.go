package task

import "strings"

// FromInput builds a task from raw add-form answers. Blank status and
// difficulty take the defaults. Unlike WithDue, a due date that does not
// parse is an error here.
func FromInput(title, description, status, difficulty, due string) (*Task, error) {
	if _, err := checkTitle(title); err != nil {
		return nil, err
	}

	opts := []Option{WithDescription(description)}

	if strings.TrimSpace(status) != "" {
		s, ok := StatusFromInput(status)
		if !ok {
			return nil, invalid("status", ErrInvalidStatus)
		}
		opts = append(opts, WithStatus(s))
	}

	if strings.TrimSpace(difficulty) != "" {
		d, ok := DifficultyFromInput(difficulty)
		if !ok {
			return nil, invalid("difficulty", ErrInvalidDifficulty)
		}
		opts = append(opts, WithDifficulty(d))
	}

	if strings.TrimSpace(due) != "" {
		at, ok := ParseDate(due)
		if !ok {
			return nil, invalid("due date", ErrInvalidDueDate)
		}
		opts = append(opts, WithDueAt(at))
	}

	return New(title, opts...)
}
