package task

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits, in characters after trimming.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// ClearValue is the update input that clears an optional field.
const ClearValue = " "

// now is replaced in tests.
var now = time.Now

// Task is a single to-do item. Fields are only changed through Apply.
type Task struct {
	title       string
	description string
	status      Status
	difficulty  Difficulty
	dueAt       time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

type params struct {
	description string
	status      Status
	difficulty  Difficulty
	due         string
	dueAt       time.Time
	createdAt   string
	updatedAt   string
}

// Option configures a task under construction.
type Option func(*params)

// WithDescription sets the description. Blank text means no description.
func WithDescription(description string) Option {
	return func(p *params) { p.description = description }
}

// WithStatus sets the status. Unknown values fall back to StatusPending.
func WithStatus(status Status) Option {
	return func(p *params) { p.status = status }
}

// WithDifficulty sets the difficulty. Unknown values fall back to DifficultyEasy.
func WithDifficulty(difficulty Difficulty) Option {
	return func(p *params) { p.difficulty = difficulty }
}

// WithDue sets the due date from text. Text that does not parse leaves the
// task without a due date; it never fails construction.
func WithDue(raw string) Option {
	return func(p *params) { p.due = raw }
}

// WithDueAt sets an already parsed due date.
func WithDueAt(due time.Time) Option {
	return func(p *params) { p.dueAt = due }
}

// WithCreatedAt restores a persisted creation timestamp.
func WithCreatedAt(raw string) Option {
	return func(p *params) { p.createdAt = raw }
}

// WithUpdatedAt restores a persisted last-edit timestamp.
func WithUpdatedAt(raw string) Option {
	return func(p *params) { p.updatedAt = raw }
}

// New builds a validated task. It returns a *ValidationError when the title
// or description break their length limits or a supplied timestamp cannot
// be parsed.
func New(title string, opts ...Option) (*Task, error) {
	var p params
	for _, opt := range opts {
		opt(&p)
	}

	t := &Task{}
	var err error
	if t.title, err = checkTitle(title); err != nil {
		return nil, err
	}
	if t.description, err = checkDescription(p.description); err != nil {
		return nil, err
	}

	t.status = p.status
	if !t.status.Valid() {
		t.status = StatusPending
	}
	t.difficulty = p.difficulty
	if !t.difficulty.Valid() {
		t.difficulty = DifficultyEasy
	}

	t.createdAt = now()
	if strings.TrimSpace(p.createdAt) != "" {
		created, ok := parseTimestamp(p.createdAt)
		if !ok {
			return nil, invalid("creation date", ErrInvalidTimestamp)
		}
		t.createdAt = created
	}
	t.updatedAt = t.createdAt
	if strings.TrimSpace(p.updatedAt) != "" {
		updated, ok := parseTimestamp(p.updatedAt)
		if !ok {
			return nil, invalid("last edit date", ErrInvalidTimestamp)
		}
		t.updatedAt = updated
	}

	switch {
	case !p.dueAt.IsZero():
		t.dueAt = p.dueAt
	case strings.TrimSpace(p.due) != "":
		if due, ok := parseTimestamp(p.due); ok {
			t.dueAt = due
		}
	}

	return t, nil
}

func checkTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	n := utf8.RuneCountInString(trimmed)
	if n == 0 || n > MaxTitleLength {
		return "", invalid("title", ErrInvalidTitle)
	}
	return trimmed, nil
}

func checkDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if utf8.RuneCountInString(trimmed) > MaxDescriptionLength {
		return "", invalid("description", ErrInvalidDescription)
	}
	return trimmed, nil
}

// Title returns the trimmed title.
func (t *Task) Title() string { return t.title }

// Description returns the description and whether the task has one.
func (t *Task) Description() (string, bool) { return t.description, t.description != "" }

// Status returns the current status.
func (t *Task) Status() Status { return t.status }

// Difficulty returns the current difficulty.
func (t *Task) Difficulty() Difficulty { return t.difficulty }

// DueAt returns the due date and whether the task has one.
func (t *Task) DueAt() (time.Time, bool) { return t.dueAt, !t.dueAt.IsZero() }

// CreatedAt returns the creation timestamp.
func (t *Task) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the last-edit timestamp.
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// Update is a partial edit. A nil field is not part of the update, an empty
// string keeps the current value, and ClearValue clears the description or
// due date.
type Update struct {
	Description *string
	Status      *string
	Difficulty  *string
	Due         *string
}

// Input returns a pointer to s, for building an Update.
func Input(s string) *string { return &s }

// Apply validates every present field of u and then applies them together.
// On error the task is unchanged. On success UpdatedAt is set to the
// current time even if no value changed.
func (t *Task) Apply(u Update) error {
	next := *t

	if v := u.Description; v != nil && *v != "" {
		if *v == ClearValue {
			next.description = ""
		} else {
			desc, err := checkDescription(*v)
			if err != nil {
				return err
			}
			next.description = desc
		}
	}

	if v := u.Status; v != nil && *v != "" {
		status, ok := StatusFromInput(*v)
		if !ok {
			return invalid("status", ErrInvalidStatus)
		}
		next.status = status
	}

	if v := u.Difficulty; v != nil && *v != "" {
		difficulty, ok := DifficultyFromInput(*v)
		if !ok {
			return invalid("difficulty", ErrInvalidDifficulty)
		}
		next.difficulty = difficulty
	}

	if v := u.Due; v != nil && *v != "" {
		if *v == ClearValue {
			next.dueAt = time.Time{}
		} else {
			due, ok := ParseDate(*v)
			if !ok {
				return invalid("due date", ErrInvalidDueDate)
			}
			next.dueAt = due
		}
	}

	next.updatedAt = now()
	*t = next
	return nil
}
