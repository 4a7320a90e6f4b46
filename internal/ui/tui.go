// Package ui provides the optional full-screen task browser.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tareas/internal/console"
	"github.com/nibzard/tareas/internal/store"
	"github.com/nibzard/tareas/internal/task"
)

// TUIOption configures the browser.
type TUIOption func(*tuiConfig)

type tuiConfig struct {
	refreshInterval time.Duration
}

// WithRefreshInterval reloads the task file periodically. Zero disables it.
func WithRefreshInterval(d time.Duration) TUIOption {
	return func(c *tuiConfig) {
		c.refreshInterval = d
	}
}

// RunTUI browses the tasks of s until the user quits.
func RunTUI(ctx context.Context, s *store.Store, opts ...TUIOption) error {
	c := &tuiConfig{
		refreshInterval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(s, c.refreshInterval)
	if err := model.refresh(); err != nil {
		return err
	}
	return runProgram(ctx, model)
}

func runProgram(ctx context.Context, model *tuiModel) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	detailStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

type tuiModel struct {
	store           *store.Store
	refreshInterval time.Duration
	loadErr         error
	loaded          store.LoadResult
	visible         []*task.Task // sorted, filtered
	cursor          int
	filter          task.Status
	filtering       bool
	search          textinput.Model
	searching       bool // search input has focus
	showDetail      bool
	showHelp        bool
}

type tickMsg time.Time

func newTUIModel(s *store.Store, refreshInterval time.Duration) *tuiModel {
	ti := textinput.New()
	ti.Placeholder = "título..."
	ti.Prompt = "/ "
	ti.CharLimit = task.MaxTitleLength
	ti.Width = 30
	ti.PromptStyle = labelStyle
	return &tuiModel{
		store:           s,
		refreshInterval: refreshInterval,
		search:          ti,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	if m.refreshInterval <= 0 {
		return nil
	}
	return tickCmd(m.refreshInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			_ = m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "/":
			m.searching = true
			return m, m.search.Focus()
		case "esc":
			m.search.SetValue("")
			m.showDetail = false
			m.applyFilter()
			return m, nil
		case "j", "down":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "enter", " ", "space":
			m.showDetail = !m.showDetail && len(m.visible) > 0
			return m, nil
		case "0":
			m.filtering = false
			m.applyFilter()
			return m, nil
		}
		for i, status := range task.Statuses {
			if msg.String() == fmt.Sprint(i+1) {
				m.filter = status
				m.filtering = true
				m.applyFilter()
				return m, nil
			}
		}
	case tickMsg:
		_ = m.refresh()
		return m, tickCmd(m.refreshInterval)
	}

	return m, nil
}

// updateSearch routes keys to the search input. Enter keeps the query,
// esc drops it.
func (m *tuiModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.applyFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *tuiModel) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString("Error al leer el archivo de tareas:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
	}

	writeOverview(&b, m.store)
	if m.filtering {
		b.WriteString(statusStyle.Render("Filtro: "+m.filter.Label()) + labelStyle.Render(" (0 para quitar)") + "\n")
	}
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n")
	}
	b.WriteString("\n")

	writeList(&b, m.visible, m.cursor)
	if m.showDetail && m.cursor < len(m.visible) {
		b.WriteString(detailStyle.Render(formatDetail(m.visible[m.cursor], time.Now())))
		b.WriteString("\n\n")
	}
	writeSource(&b, m.store.Path(), m.loaded)
	writeFooter(&b)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh reloads the task file. On failure the previous tasks stay on
// screen with the error above them.
func (m *tuiModel) refresh() error {
	result, err := m.store.Load()
	if err != nil {
		m.loadErr = err
		m.applyFilter()
		return err
	}
	m.loadErr = nil
	m.loaded = result
	m.applyFilter()
	return nil
}

// applyFilter rebuilds the visible list from the status filter and the
// search query, keeping the cursor in range.
func (m *tuiModel) applyFilter() {
	tasks := m.store.All()
	if query := strings.TrimSpace(m.search.Value()); query != "" {
		tasks = m.store.SearchByTitle(query)
	}
	if m.filtering {
		var kept []*task.Task
		for _, t := range tasks {
			if t.Status() == m.filter {
				kept = append(kept, t)
			}
		}
		tasks = kept
	}
	m.visible = store.SortByTitle(tasks)

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(m.visible) == 0 {
		m.showDetail = false
	}
}

func writeTitle(b *strings.Builder) {
	title := "Tareas"
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeOverview(b *strings.Builder, s *store.Store) {
	parts := make([]string, 0, len(task.Statuses))
	for _, status := range task.Statuses {
		parts = append(parts, fmt.Sprintf("%s: %d", status.Label(), len(s.FilterByStatus(status))))
	}
	b.WriteString("  " + strings.Join(parts, "  ") + "\n")
}

func writeList(b *strings.Builder, tasks []*task.Task, cursor int) {
	if len(tasks) == 0 {
		b.WriteString("  (No hay tareas para mostrar)\n\n")
		return
	}
	for i, t := range tasks {
		line := formatTask(t)
		if i == cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
			continue
		}
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")
}

func writeSource(b *strings.Builder, path string, result store.LoadResult) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("Archivo: %s", path)))
	if result.Skipped > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf(" (%d omitidas por datos inválidos)", result.Skipped)))
	}
	b.WriteString("\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Atajos de teclado\n\n")
	b.WriteString("  q, ctrl+c    Salir\n")
	b.WriteString("  r, F5        Recargar el archivo\n")
	b.WriteString("  h, ?         Mostrar u ocultar esta ayuda\n")
	b.WriteString("  j, k         Mover la selección\n")
	b.WriteString("  enter        Ver detalles\n")
	b.WriteString("  /            Buscar por título (esc para quitar)\n")
	b.WriteString("  1            Filtrar pendientes\n")
	b.WriteString("  2            Filtrar en curso\n")
	b.WriteString("  3            Filtrar terminadas\n")
	b.WriteString("  4            Filtrar canceladas\n")
	b.WriteString("  0            Quitar filtro\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(labelStyle.Render("h ayuda | / buscar | q salir") + "\n")
}

func formatTask(t *task.Task) string {
	statusIcon := " "
	switch t.Status() {
	case task.StatusInProgress:
		statusIcon = ">"
	case task.StatusFinished:
		statusIcon = "x"
	case task.StatusCancelled:
		statusIcon = "-"
	}
	return fmt.Sprintf("[%s] %s %s", statusIcon, t.Difficulty().Stars(), t.Title())
}

// formatDetail renders every field of t. A due date in the past is
// highlighted while the task is still open.
func formatDetail(t *task.Task, now time.Time) string {
	due, hasDue := t.DueAt()
	dueText := console.FormatDate(due, hasDue)
	open := t.Status() == task.StatusPending || t.Status() == task.StatusInProgress
	if hasDue && open && due.Before(now) {
		dueText = overdueStyle.Render(dueText + " (vencida)")
	}

	lines := []string{
		t.Title(),
		console.FormatDescription(t),
		"",
		labelStyle.Render("Estado: ") + statusStyle.Render(t.Status().Label()),
		labelStyle.Render("Dificultad: ") + t.Difficulty().String(),
		labelStyle.Render("Vencimiento: ") + dueText,
		labelStyle.Render("Creación: ") + console.FormatDate(t.CreatedAt(), true),
		labelStyle.Render("Última edición: ") + console.FormatDate(t.UpdatedAt(), true),
	}
	return strings.Join(lines, "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
