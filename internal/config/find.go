package config

import (
	"os"
	"path/filepath"

	"github.com/gryf/urxvt-wrapper/internal/env"
)

// GlobalConfigPath returns the path of the user-wide configuration file,
// whether or not it exists. This is also where "config set" writes.
func GlobalConfigPath(e env.Env) string {
	return filepath.Join(XDGConfigDir(e), AppName, AppName+".json")
}

// EnvFilePath returns the path of the optional dotenv file loaded before
// environment resolution.
func EnvFilePath(e env.Env) string {
	return filepath.Join(XDGConfigDir(e), AppName, "env")
}

// findConfigs returns the existing configuration files in merge order:
// the user-wide file first, then a per-directory override next to the
// working directory, so local values win.
func findConfigs(e env.Env, workingDir string) []string {
	var paths []string
	global := GlobalConfigPath(e)
	if _, err := os.Stat(global); err == nil {
		paths = append(paths, global)
	}
	local := filepath.Join(workingDir, "."+AppName+".json")
	if _, err := os.Stat(local); err == nil {
		paths = append(paths, local)
	}
	return paths
}
