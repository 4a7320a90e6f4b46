package config

// Default values.
const (
	DefaultTaskFile  = "tasks.json"
	DefaultUsername  = "Usuario"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for tareas.
type Config struct {
	// Path to the JSON task file
	TaskFile string `toml:"task_file"`

	// Name used in the menu greeting
	Username string `toml:"username"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Working directory (computed)
	ProjectRoot string `toml:"-"`

	// Config files that were applied, lowest priority first (computed)
	Files []string `toml:"-"`
}
