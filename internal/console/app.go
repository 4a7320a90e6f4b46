package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tareas/internal/store"
)

const clearSequence = "\033[H\033[2J"

// App is the interactive menu session.
type App struct {
	in       *bufio.Reader
	out      io.Writer
	store    *store.Store
	logger   *log.Logger
	username string
	clear    bool

	// set for the duration of Run
	ctx   context.Context
	lines chan line
	stop  chan struct{}
}

type line struct {
	text string
	err  error
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithUsername sets the name used in the greeting.
func WithUsername(name string) Option {
	return func(a *App) {
		if strings.TrimSpace(name) != "" {
			a.username = strings.TrimSpace(name)
		}
	}
}

// WithClearScreen clears the terminal before each screen.
func WithClearScreen(enabled bool) Option {
	return func(a *App) { a.clear = enabled }
}

// New creates a menu session reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, s *store.Store, opts ...Option) *App {
	a := &App{
		in:       bufio.NewReader(in),
		out:      out,
		store:    s,
		logger:   log.New(io.Discard),
		username: "Usuario",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run loads the store, drives the menus until the user exits, then saves.
// A load failure is returned before any menu is shown and nothing is
// written. Input ending early counts as exiting. Cancelling ctx abandons
// the pending prompt and returns the context error without a final save.
func (a *App) Run(ctx context.Context) error {
	if err := a.load(); err != nil {
		return err
	}

	a.ctx = ctx
	a.startReader()
	defer close(a.stop)

	err := a.pause("Presiona Enter para iniciar la aplicación...")
	if err == nil {
		err = a.mainMenu(ctx)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	a.save()
	a.println("¡Hasta luego!")
	return nil
}

func (a *App) load() error {
	result, err := a.store.Load()
	if err != nil {
		a.printf("\n[ERROR CRÍTICO] No se pudo leer '%s'.\n", a.store.Path())
		detail := errors.Unwrap(err)
		var corrupt *store.CorruptDataError
		if errors.As(err, &corrupt) {
			a.println("Verifique que el archivo no esté corrupto.")
			detail = corrupt.Err
		}
		if detail == nil {
			detail = err
		}
		a.printf("Detalle: %v\n", detail)
		a.println("La aplicación no puede iniciar debido a un error crítico.")
		return err
	}

	if result.Seeded {
		a.printf("No se encontró '%s'. Usando datos de demostración.\n", a.store.Path())
		a.println("El archivo se creará automáticamente al guardar cambios o al salir.")
		return nil
	}
	a.println("\n--- Resumen de Carga ---")
	a.printf("Se cargaron %d tareas exitosamente.\n", result.Loaded)
	if result.Skipped > 0 {
		a.printf("Se omitieron %d tareas por datos inválidos.\n", result.Skipped)
	}
	a.println("------------------------")
	return nil
}

// save persists the store and reports the outcome. A failure is shown and
// the session goes on with the in-memory tasks.
func (a *App) save() bool {
	if err := a.store.Save(); err != nil {
		a.logger.Error("save failed", "path", a.store.Path(), "err", err)
		a.printf("\n[ERROR] No se pudo guardar en %s: %v\n", a.store.Path(), errors.Unwrap(err))
		return false
	}
	a.printf("\n(Tareas guardadas en %s)\n", a.store.Path())
	return true
}

// startReader reads input lines in the background so that a pending
// prompt can be abandoned when the context is cancelled.
func (a *App) startReader() {
	a.lines = make(chan line)
	a.stop = make(chan struct{})
	go func() {
		defer close(a.lines)
		for {
			text, err := a.in.ReadString('\n')
			if err != nil && errors.Is(err, io.EOF) && text != "" {
				err = nil
			}
			select {
			case a.lines <- line{text: strings.TrimRight(text, "\r\n"), err: err}:
			case <-a.stop:
				return
			}
			if err != nil {
				return
			}
		}
	}()
}

// ask prints prompt and returns the next line without its line ending.
// It returns io.EOF once input is exhausted, or the context error.
func (a *App) ask(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	select {
	case <-a.ctx.Done():
		return "", a.ctx.Err()
	case l, ok := <-a.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// choose asks for a menu option and returns it trimmed and upper-cased.
func (a *App) choose() (string, error) {
	answer, err := a.ask("> ")
	return strings.ToUpper(strings.TrimSpace(answer)), err
}

// confirm asks a S/N question. Only S means yes.
func (a *App) confirm(prompt string) (bool, error) {
	answer, err := a.ask(prompt)
	return strings.EqualFold(strings.TrimSpace(answer), "S"), err
}

func (a *App) pause(msg string) error {
	_, err := a.ask("\n" + msg)
	return err
}

func (a *App) invalidOption() error {
	return a.pause("Opción inválida. Intente nuevamente.")
}

func (a *App) clearScreen() {
	if a.clear {
		fmt.Fprint(a.out, clearSequence)
	}
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
