// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.tareas/tareas.toml or OS-specific config directory)
// 3. Project config file (tareas.toml or .tareas.toml in the working directory)
// 4. A .env file in the working directory
// 5. Environment variables (TAREAS_*)
// 6. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
// Real environment variables win over values from .env, which is read
// without changing the process environment.
//
// User-level config locations:
// - ~/.tareas/tareas.toml (preferred)
// - Windows: %APPDATA%\tareas\tareas.toml
// - macOS: ~/Library/Application Support/tareas/tareas.toml
// - Linux/BSD: $XDG_CONFIG_HOME/tareas/tareas.toml or ~/.config/tareas/tareas.toml
//
// Project-level config locations (overrides user config):
// - ./tareas.toml (preferred)
// - ./.tareas.toml
package config
