package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/tareas/internal/config"
	"github.com/nibzard/tareas/internal/logging"
	"github.com/nibzard/tareas/internal/store"
)

// doctorCommand checks the configuration and the task file without
// changing anything on disk.
func doctorCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tareas doctor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	taskPath := cfg.TaskFile
	if len(remaining) == 1 {
		taskPath = remaining[0]
	}

	fmt.Fprintln(stdout, "Tareas Doctor")
	fmt.Fprintln(stdout, "=============")
	fmt.Fprintln(stdout)

	allOK := true

	// Check config
	fmt.Fprintln(stdout, "Config:")
	if len(cfg.Files) == 0 {
		fmt.Fprintln(stdout, "  ✅ No config files (defaults and environment)")
	}
	for _, f := range cfg.Files {
		fmt.Fprintf(stdout, "  ✅ %s\n", f)
	}
	fmt.Fprintf(stdout, "  Working directory: %s\n", cfg.ProjectRoot)
	fmt.Fprintf(stdout, "  User: %s\n", cfg.Username)
	fmt.Fprintf(stdout, "  Log level: %s (%s)\n", logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	fmt.Fprintln(stdout)

	// Check task file
	fmt.Fprintf(stdout, "Task file: %s\n", taskPath)
	info, err := os.Stat(taskPath)
	switch {
	case os.IsNotExist(err):
		fmt.Fprintln(stdout, "  ⚠️  Not found (demo tasks are used until the first save)")
	case err != nil:
		fmt.Fprintf(stdout, "  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Fprintln(stdout, "  ❌ Error: path is a directory")
		allOK = false
	default:
		fmt.Fprintln(stdout, "  ✅ OK")
		if !checkTaskFile(taskPath, *verbose) {
			allOK = false
		}
	}
	fmt.Fprintln(stdout)

	if allOK {
		fmt.Fprintln(stdout, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(stdout, "⚠️  Some checks failed. Tareas may not start or may skip tasks.")
	return fmt.Errorf("doctor checks failed")
}

// checkTaskFile validates the file against the schema and dry-runs a load.
// It reports false when the file cannot be loaded or breaks the schema.
func checkTaskFile(path string, verbose bool) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdout, "  ❌ Read error: %v\n", err)
		return false
	}

	ok := true
	report, err := store.Validate(data)
	if err != nil {
		fmt.Fprintf(stdout, "  ❌ Schema error: %v\n", err)
		ok = false
	} else if report.Valid {
		fmt.Fprintln(stdout, "  ✅ Valid")
	} else {
		fmt.Fprintln(stdout, "  ❌ Validation failed:")
		for _, v := range report.Violations {
			fmt.Fprintf(stdout, "     - %v\n", v)
		}
		ok = false
	}

	s := store.New(path)
	result, err := s.Load()
	if err != nil {
		fmt.Fprintf(stdout, "  ❌ Load error: %v\n", err)
		return false
	}
	fmt.Fprintf(stdout, "  Tasks: %d loaded, %d skipped\n", result.Loaded, result.Skipped)
	if verbose {
		for _, t := range store.SortByTitle(s.All()) {
			fmt.Fprintf(stdout, "    - [%s] %s\n", t.Status().Code(), t.Title())
		}
	}
	return ok
}
