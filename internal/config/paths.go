package config

import (
	"os"
	"path/filepath"

	"github.com/gryf/urxvt-wrapper/internal/env"
)

// Centralized environment variable keys
const (
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
	EnvHome          = "HOME"
)

// HomeDir returns the user's home directory, preferring $HOME so tests
// can redirect it.
func HomeDir(e env.Env) string {
	if dir := e.Get(EnvHome); dir != "" {
		return dir
	}
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return ""
}

// XDGConfigDir returns the base XDG config directory path.
// Falls back to $HOME/.config when XDG is not set.
func XDGConfigDir(e env.Env) string {
	if dir := e.Get(EnvXDGConfigHome); dir != "" {
		return dir
	}
	return filepath.Join(HomeDir(e), ".config")
}
