package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tareas/internal/task"
)

// Store is the ordered, in-memory collection of the session's tasks.
// It is not safe for concurrent use.
type Store struct {
	path   string
	tasks  []*task.Task
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load summaries and skipped elements.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns an empty store backed by the file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// LoadResult summarizes a Load.
type LoadResult struct {
	Loaded  int  // elements turned into tasks
	Skipped int  // elements that failed validation
	Seeded  bool // file was missing and demo tasks were added
}

// Add appends t to the end of the store. It does not persist.
func (s *Store) Add(t *task.Task) {
	s.tasks = append(s.tasks, t)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// All returns a snapshot of the tasks in insertion order. Changing the
// returned slice does not change the store.
func (s *Store) All() []*task.Task {
	out := make([]*task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// At returns the task at index i, or false if i is out of range.
func (s *Store) At(i int) (*task.Task, bool) {
	if i < 0 || i >= len(s.tasks) {
		return nil, false
	}
	return s.tasks[i], true
}

// FilterByStatus returns the tasks with the given status in store order.
func (s *Store) FilterByStatus(status task.Status) []*task.Task {
	var out []*task.Task
	for _, t := range s.tasks {
		if t.Status() == status {
			out = append(out, t)
		}
	}
	return out
}

// SearchByTitle returns the tasks whose title contains query, ignoring case.
// An empty query matches every task.
func (s *Store) SearchByTitle(query string) []*task.Task {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []*task.Task
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Title()), q) {
			out = append(out, t)
		}
	}
	return out
}

// Load replaces the store contents with the tasks in the backing file.
//
// A missing file seeds demo tasks into an empty store and is not an error.
// Content that is not a JSON array returns *CorruptDataError and leaves the
// store as it was. Elements that cannot become a task are skipped.
func (s *Store) Load() (LoadResult, error) {
	var result LoadResult

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("task file not found, using demo data", "path", s.path)
			result.Seeded = s.SeedDemo()
			return result, nil
		}
		return result, fmt.Errorf("read task file: %w", err)
	}

	elements, err := decodeArray(data)
	if err != nil {
		return result, &CorruptDataError{Path: s.path, Err: err}
	}

	loaded := make([]*task.Task, 0, len(elements))
	for i, raw := range elements {
		t, err := decodeTask(raw)
		if err != nil {
			result.Skipped++
			s.logger.Warn("skipping invalid task", "index", i, "title", peekTitle(raw), "err", err)
			continue
		}
		loaded = append(loaded, t)
	}

	s.tasks = loaded
	result.Loaded = len(loaded)
	s.logger.Info("tasks loaded", "path", s.path, "loaded", result.Loaded, "skipped", result.Skipped)
	return result, nil
}

func decodeArray(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty file")
	}
	if !json.Valid(trimmed) {
		return nil, errors.New("invalid JSON")
	}
	if trimmed[0] != '[' {
		return nil, errors.New("top-level value is not an array")
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

func decodeTask(raw json.RawMessage) (*task.Task, error) {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, &task.ValidationError{Field: "element", Err: err}
	}
	return r.toTask()
}

// peekTitle extracts a title for log messages from an element that may not
// decode as a record.
func peekTitle(raw json.RawMessage) string {
	var probe struct {
		Titulo interface{} `json:"titulo"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Titulo == nil {
		return "(untitled)"
	}
	return fmt.Sprint(probe.Titulo)
}

// Save writes every task to the backing file, replacing its content.
// Any failure is returned as *WriteError.
func (s *Store) Save() error {
	records := make([]record, len(s.tasks))
	for i, t := range s.tasks {
		records[i] = toRecord(t)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("marshal tasks: %w", err)}
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	s.logger.Debug("tasks saved", "path", s.path, "count", len(s.tasks))
	return nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("chmod temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}
