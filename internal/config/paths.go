package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// expandPath expands environment variables and a leading ~ in p.
// On Windows it also accepts ~\ and %VAR%.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		expanded = expandWindowsEnv(expanded)
	}

	if expanded != "~" && !strings.HasPrefix(expanded, "~/") &&
		!(runtime.GOOS == "windows" && strings.HasPrefix(expanded, "~\\")) {
		return expanded
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return expanded
	}
	if expanded == "~" {
		return home
	}
	return filepath.Join(home, expanded[2:])
}

// expandWindowsEnv replaces %VAR% references that are set; unknown ones
// are left as written.
func expandWindowsEnv(p string) string {
	if !strings.Contains(p, "%") {
		return p
	}
	var b strings.Builder
	for i := 0; i < len(p); {
		if p[i] == '%' {
			if end := strings.IndexByte(p[i+1:], '%'); end > 0 {
				key := p[i+1 : i+1+end]
				if val, ok := os.LookupEnv(key); ok {
					b.WriteString(val)
					i += end + 2
					continue
				}
			}
		}
		b.WriteByte(p[i])
		i++
	}
	return b.String()
}
