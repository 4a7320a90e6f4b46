package config

import "flag"

// parseFlags defines and parses CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("tareas", flag.ContinueOnError)
	}

	// Paths
	fs.StringVar(&cfg.TaskFile, "file", cfg.TaskFile, "Path to task file")

	// Session
	fs.StringVar(&cfg.Username, "user", cfg.Username, "Name shown in the menu greeting")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log output")

	return fs.Parse(args)
}
