package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.tareas/tareas.toml or OS-specific config dir)
// 3. Project config file (tareas.toml or .tareas.toml in current directory)
// 4. .env file in current directory
// 5. Environment variables
// 6. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4-5. Override from .env and environment
	dotenv, err := readDotEnv(dotEnvFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dotEnvFile, err)
	}
	loadFromEnv(cfg, lookupWithDotEnv(dotenv))

	// 6. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 7. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	cfg.Files = append(cfg.Files, path)
	return nil
}

// dotEnvFile is the .env file name looked up in the working directory.
const dotEnvFile = ".env"

// readDotEnv reads key/value pairs from a .env file. A missing file yields
// no values.
func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return values, nil
}

// finalizeConfig computes derived values and validates paths.
func finalizeConfig(cfg *Config) error {
	// Expand ~ in paths
	cfg.TaskFile = expandPath(cfg.TaskFile)
	if cfg.TaskFile == "" {
		return fmt.Errorf("task file path is empty")
	}

	// Determine project root
	if cfg.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.ProjectRoot = wd
	}

	// Make paths absolute if they're relative
	if !filepath.IsAbs(cfg.TaskFile) {
		cfg.TaskFile = filepath.Join(cfg.ProjectRoot, cfg.TaskFile)
	}

	if cfg.Username == "" {
		cfg.Username = DefaultUsername
	}

	return nil
}
