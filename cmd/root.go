// Package cmd implements the CLI command structure for tareas.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/nibzard/tareas/internal/config"
	"github.com/nibzard/tareas/internal/console"
	"github.com/nibzard/tareas/internal/logging"
	"github.com/nibzard/tareas/internal/store"
	"github.com/nibzard/tareas/internal/task"
	"github.com/nibzard/tareas/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run executes the tareas CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tareas", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.New(stderr, logging.OptionsFromConfig(cfg))

	// Determine the subcommand
	// If no args or first arg is a flag, use "menu" as default
	subcommand := "menu"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "menu":
		return menuCommand(ctx, cfg, logger, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, logger, remainingArgs)
	case "ls":
		return lsCommand(cfg, logger, remainingArgs)
	case "search":
		return searchCommand(cfg, logger, remainingArgs)
	case "add":
		return addCommand(cfg, logger, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "config":
		return configCommand(cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// menuCommand runs the interactive console menu.
func menuCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("tareas menu", flag.ContinueOnError)
	fs.SetOutput(stderr)
	clearScreen := fs.Bool("clear", ui.IsTTY(stdout), "Clear the screen between menus")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	s := store.New(cfg.TaskFile, store.WithLogger(logger))
	app := console.New(stdin, stdout, s,
		console.WithLogger(logger),
		console.WithUsername(cfg.Username),
		console.WithClearScreen(*clearScreen),
	)
	return app.Run(ctx)
}

// tuiCommand launches the full-screen browser.
func tuiCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("tareas tui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	refresh := fs.Duration("refresh", 2*time.Second, "Reload the task file this often (0 disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if !ui.IsTTY(stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	// The browser owns the terminal; keep diagnostics quiet while it runs.
	s := store.New(cfg.TaskFile, store.WithLogger(logging.Discard()))
	logger.Debug("starting browser", "path", cfg.TaskFile)
	return ui.RunTUI(ctx, s, ui.WithRefreshInterval(*refresh))
}

// lsCommand lists tasks grouped by status, or only the given status.
func lsCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("tareas ls", flag.ContinueOnError)
	fs.SetOutput(stderr)
	statusFilter := fs.String("status", "", "Filter by status (P|E|T|C or its name)")
	verbose := fs.Bool("v", false, "Show more details")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) >= 1 && *statusFilter == "" {
		*statusFilter = strings.Join(remaining, " ")
		remaining = nil
	}
	if len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}

	s, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}

	if *statusFilter == "" {
		tasks := s.All()
		if len(tasks) == 0 {
			fmt.Fprintln(stdout, "No hay tareas para mostrar.")
			return nil
		}
		for _, status := range task.Statuses {
			printTasksByStatus(status.Label(), s.FilterByStatus(status), *verbose)
		}
		return nil
	}

	status, ok := task.StatusFromInput(*statusFilter)
	if !ok {
		return fmt.Errorf("unknown status %q: %w", *statusFilter, task.ErrInvalidStatus)
	}
	printTaskList(s.FilterByStatus(status), *verbose)
	return nil
}

// searchCommand lists tasks whose title contains the given text.
func searchCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("tareas search", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Show more details")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		return fmt.Errorf("search requires text to look for")
	}

	s, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}
	printTaskList(s.SearchByTitle(query), *verbose)
	return nil
}

// addCommand creates a task from flags and saves the file.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("tareas add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	title := fs.String("title", "", "Task title (1..100 characters)")
	desc := fs.String("desc", "", "Description (up to 500 characters)")
	status := fs.String("status", "", "Status (P|E|T|C or its name, default P)")
	difficulty := fs.String("difficulty", "", "Difficulty (1|2|3 or F|M|D, default 1)")
	due := fs.String("due", "", "Due date (YYYY-MM-DD or DD/MM/YYYY, optional HH:MM)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" && fs.NArg() > 0 {
		*title = strings.Join(fs.Args(), " ")
	} else if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	t, err := task.FromInput(*title, *desc, *status, *difficulty, *due)
	if err != nil {
		return fmt.Errorf("adding task: %w", err)
	}

	s, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}
	s.Add(t)
	if err := s.Save(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Tarea agregada: %s\n", t.Title())
	return nil
}

// configCommand prints the effective configuration, or an example file.
func configCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tareas config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	example := fs.Bool("example", false, "Print an example configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *example {
		fmt.Fprint(stdout, config.ExampleConfig())
		return nil
	}

	for _, f := range cfg.Files {
		fmt.Fprintf(stdout, "# from %s\n", f)
	}
	return toml.NewEncoder(stdout).Encode(cfg)
}

// versionCommand shows version information.
func versionCommand() error {
	fmt.Fprintf(stdout, "tareas version %s\n", Version)
	return nil
}

// loadStore loads the configured task file. A corrupt file is an error so
// that nothing overwrites it.
func loadStore(cfg *config.Config, logger *log.Logger) (*store.Store, error) {
	s := store.New(cfg.TaskFile, store.WithLogger(logger))
	if _, err := s.Load(); err != nil {
		var corrupt *store.CorruptDataError
		if errors.As(err, &corrupt) {
			return nil, fmt.Errorf("loading task file (fix or move it first): %w", err)
		}
		return nil, fmt.Errorf("loading task file: %w", err)
	}
	return s, nil
}

// printUsage prints help text.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Tareas - Personal task manager")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tareas [global options] [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  menu             Interactive menu (default command)")
	fmt.Fprintln(w, "  tui              Full-screen task browser")
	fmt.Fprintln(w, "  ls [status]      List tasks by status")
	fmt.Fprintln(w, "  search <text>    Find tasks whose title contains text")
	fmt.Fprintln(w, "  add [title]      Add a task and save the file")
	fmt.Fprintln(w, "  doctor           Check configuration and task file validity")
	fmt.Fprintln(w, "  config           Show the effective configuration")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add Options (use with 'add' command):")
	fmt.Fprintln(w, "  -title string")
	fmt.Fprintln(w, "        Task title (1..100 characters)")
	fmt.Fprintln(w, "  -desc string")
	fmt.Fprintln(w, "        Description (up to 500 characters)")
	fmt.Fprintln(w, "  -status string")
	fmt.Fprintln(w, "        Status (P|E|T|C or its name, default P)")
	fmt.Fprintln(w, "  -difficulty string")
	fmt.Fprintln(w, "        Difficulty (1|2|3 or F|M|D, default 1)")
	fmt.Fprintln(w, "  -due string")
	fmt.Fprintln(w, "        Due date (YYYY-MM-DD or DD/MM/YYYY, optional HH:MM)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options (use with 'ls' or 'search' command):")
	fmt.Fprintln(w, "  -status string")
	fmt.Fprintln(w, "        Filter by status (P|E|T|C or its name)")
	fmt.Fprintln(w, "  -v    Show more details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other Options:")
	fmt.Fprintln(w, "  menu -clear     Clear the screen between menus (default when stdout is a terminal)")
	fmt.Fprintln(w, "  tui -refresh    Reload interval for the browser (default 2s)")
	fmt.Fprintln(w, "  config -example Print an example configuration file")
}

// printTasksByStatus prints one status group, skipping empty groups.
func printTasksByStatus(label string, tasks []*task.Task, verbose bool) {
	if len(tasks) == 0 {
		return
	}
	fmt.Fprintf(stdout, "%s (%d):\n", label, len(tasks))
	for _, t := range store.SortByTitle(tasks) {
		printTask(t, verbose)
	}
	fmt.Fprintln(stdout)
}

// printTaskList prints tasks sorted by title.
func printTaskList(tasks []*task.Task, verbose bool) {
	if len(tasks) == 0 {
		fmt.Fprintln(stdout, "No hay tareas para mostrar.")
		return
	}
	for _, t := range store.SortByTitle(tasks) {
		printTask(t, verbose)
	}
}

// printTask prints a single task.
func printTask(t *task.Task, verbose bool) {
	fmt.Fprintf(stdout, "  [%s] %s %s\n", t.Status().Code(), t.Difficulty().Stars(), t.Title())

	if verbose {
		if desc, ok := t.Description(); ok {
			fmt.Fprintf(stdout, "      Descripción: %s\n", desc)
		}
		due, hasDue := t.DueAt()
		fmt.Fprintf(stdout, "      Estado: %s | Dificultad: %s\n", t.Status().Label(), t.Difficulty().Label())
		fmt.Fprintf(stdout, "      Vencimiento: %s | Creación: %s | Última edición: %s\n",
			console.FormatDate(due, hasDue),
			console.FormatDate(t.CreatedAt(), true),
			console.FormatDate(t.UpdatedAt(), true),
		)
	}
}
