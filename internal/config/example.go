package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tareas configuration file
# Values can be overridden by .env, environment variables (TAREAS_*) or CLI flags

# Task file (relative to the working directory; supports ~ expansion)
task_file = "tasks.json"

# Name shown in the menu greeting
username = "Usuario"

# Logging: level is debug, info, warn or error; format is text, json or logfmt
log_level = "info"
log_format = "text"
log_timestamps = false
log_caller = false
`
}
