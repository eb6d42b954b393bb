package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tidwall/sjson"

	"github.com/gryf/urxvt-wrapper/internal/env"
)

const (
	// AppName determines the configuration directory name and the base name
	// of the configuration file, e.g. ~/.config/urxvt-wrapper/urxvt-wrapper.json
	// and a per-directory .urxvt-wrapper.json override.
	AppName = "urxvt-wrapper"

	// Environment variables recognized at resolution time. They sit between
	// config files and command-line flags in the override order.
	EnvSize       = "URXVT_SIZE"
	EnvFixedSize  = "URXVT_FIXED_SIZE"
	EnvIcon       = "URXVT_ICON"
	EnvIconPath   = "URXVT_ICON_PATH"
	EnvTTF        = "URXVT_TTF"
	EnvBitmap     = "URXVT_BMP"
	EnvExtensions = "URXVT_EXTENSIONS"
	EnvMode       = "URXVT_MODE"
)

// LaunchMode selects between the urxvtc/urxvtd pair and a plain urxvt run.
type LaunchMode string

const (
	ModeDaemon LaunchMode = "daemon"
	ModeDirect LaunchMode = "direct"
)

// FileKeys lists the fields accepted in config files and by "config set".
var FileKeys = []string{
	"size",
	"fixed_size",
	"icon",
	"icon_path",
	"font",
	"bitmap_font",
	"extensions",
	"tab_extension",
	"mode",
}

// fileConfig mirrors the JSON shape of the merged config files.
type fileConfig struct {
	Size         string   `json:"size,omitempty"`
	FixedSize    string   `json:"fixed_size,omitempty"`
	Icon         string   `json:"icon,omitempty"`
	IconPath     string   `json:"icon_path,omitempty"`
	Font         string   `json:"font,omitempty"`
	BitmapFont   string   `json:"bitmap_font,omitempty"`
	Extensions   []string `json:"extensions,omitempty"`
	TabExtension string   `json:"tab_extension,omitempty"`
	Mode         string   `json:"mode,omitempty"`
}

// Config is the fully resolved launch configuration. It is built fresh on
// every invocation and never persisted.
//
// Sizes are opaque strings: whatever the user supplied is substituted into
// the font specs verbatim, without numeric validation or reformatting.
type Config struct {
	Size         string
	FixedSize    string
	Icon         string
	IconPath     string
	PrimaryFont  string
	BitmapFont   string
	Extensions   []string
	TabExtension string
	Scalable     bool
	Mode         LaunchMode
	Exec         string
	ExecArgs     []string

	// fixedExplicit records whether FixedSize was set on its own (env or
	// config file); if not, it keeps mirroring Size through flag overrides.
	fixedExplicit bool

	envs   env.Env
	global string
}

// Overrides carries the command-line layer. Pointer fields distinguish
// "not given" from an explicit empty value.
type Overrides struct {
	Icon         *string
	Size         *string
	Exec         *string
	ExecArgs     []string
	Tabbed       bool
	FixedBackend bool
	NoExtensions bool
	Direct       bool
}

// Load resolves the configuration from built-in defaults, merged config
// files and environment variables, in that order. Flags are layered on
// afterwards with Apply.
func Load(e env.Env, workingDir string) (*Config, error) {
	defaults := BuiltinDefaults(e).clone()

	loadEnvFile(e)

	fc, err := loadFiles(e, workingDir)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Size:         defaults.Size,
		Icon:         defaults.Icon,
		IconPath:     defaults.IconPath,
		PrimaryFont:  defaults.PrimaryFont,
		BitmapFont:   defaults.BitmapFont,
		Extensions:   defaults.Extensions,
		TabExtension: defaults.TabExtension,
		Scalable:     true,
		Mode:         defaults.Mode,
		envs:         e,
		global:       GlobalConfigPath(e),
	}

	// Config file layer.
	if fc.Size != "" {
		cfg.Size = fc.Size
	}
	if fc.FixedSize != "" {
		cfg.FixedSize = fc.FixedSize
		cfg.fixedExplicit = true
	}
	if fc.Icon != "" {
		cfg.Icon = fc.Icon
	}
	if fc.IconPath != "" {
		cfg.IconPath = fc.IconPath
	}
	if fc.Font != "" {
		cfg.PrimaryFont = fc.Font
	}
	if fc.BitmapFont != "" {
		cfg.BitmapFont = fc.BitmapFont
	}
	if fc.Extensions != nil {
		cfg.Extensions = slices.Clone(fc.Extensions)
	}
	if fc.TabExtension != "" {
		cfg.TabExtension = fc.TabExtension
	}
	if fc.Mode != "" {
		cfg.Mode = parseMode(fc.Mode, cfg.Mode)
	}

	// Environment layer.
	if v := e.Get(EnvSize); v != "" {
		cfg.Size = v
	}
	if v := e.Get(EnvFixedSize); v != "" {
		cfg.FixedSize = v
		cfg.fixedExplicit = true
	}
	if v := e.Get(EnvIcon); v != "" {
		cfg.Icon = v
	}
	if v := e.Get(EnvIconPath); v != "" {
		cfg.IconPath = v
	}
	if v := e.Get(EnvTTF); v != "" {
		cfg.PrimaryFont = v
	}
	if v := e.Get(EnvBitmap); v != "" {
		cfg.BitmapFont = v
	}
	if v := e.Get(EnvExtensions); v != "" {
		cfg.Extensions = splitList(v)
	}
	if v := e.Get(EnvMode); v != "" {
		cfg.Mode = parseMode(v, cfg.Mode)
	}

	if !cfg.fixedExplicit {
		cfg.FixedSize = cfg.Size
	}
	return cfg, nil
}

// Apply layers command-line overrides on top of a loaded configuration.
// The extension-clearing flag always wins over the tab-extension flag,
// whatever order they were given in.
func (c *Config) Apply(o Overrides) {
	if o.Icon != nil {
		c.Icon = *o.Icon
	}
	if o.Size != nil {
		c.Size = *o.Size
		if !c.fixedExplicit {
			c.FixedSize = c.Size
		}
	}
	if o.Exec != nil {
		c.Exec = *o.Exec
		c.ExecArgs = slices.Clone(o.ExecArgs)
	}
	if o.Tabbed {
		c.Extensions = append([]string{c.TabExtension}, c.Extensions...)
	}
	if o.NoExtensions {
		c.Extensions = nil
	}
	if o.FixedBackend {
		c.Scalable = false
	}
	if o.Direct {
		c.Mode = ModeDirect
	}
}

// SetField writes a single field into the user-wide config file, creating
// it if needed. Used by "config set".
func (c *Config) SetField(key string, value any) error {
	if !slices.Contains(FileKeys, key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	data, err := os.ReadFile(c.global)
	if err != nil {
		if os.IsNotExist(err) {
			data = []byte("{}")
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	newValue, err := sjson.Set(string(data), key, value)
	if err != nil {
		return fmt.Errorf("failed to set config field %s: %w", key, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.global), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(c.global, []byte(newValue), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GlobalPath returns the user-wide config file location.
func (c *Config) GlobalPath() string {
	return c.global
}

// loadEnvFile overlays variables from the optional dotenv file. Real
// environment variables keep precedence over file entries.
func loadEnvFile(e env.Env) {
	path := EnvFilePath(e)
	if _, err := os.Stat(path); err != nil {
		return
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		slog.Warn("ignoring unreadable env file", "path", path, "error", err)
		return
	}
	for k, v := range vars {
		if e.Get(k) == "" {
			e.Set(k, v)
		}
	}
}

func loadFiles(e env.Env, workingDir string) (fileConfig, error) {
	var fc fileConfig
	paths := findConfigs(e, workingDir)
	if len(paths) == 0 {
		return fc, nil
	}
	readers := make([]io.Reader, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fc, fmt.Errorf("failed to read config file %s: %w", p, err)
		}
		readers = append(readers, bytes.NewReader(data))
	}
	merged, err := Merge(readers)
	if err != nil {
		return fc, fmt.Errorf("failed to merge config files: %w", err)
	}
	if err := json.NewDecoder(merged).Decode(&fc); err != nil {
		return fc, fmt.Errorf("failed to parse config: %w", err)
	}
	return fc, nil
}

func parseMode(s string, fallback LaunchMode) LaunchMode {
	switch LaunchMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDaemon:
		return ModeDaemon
	case ModeDirect:
		return ModeDirect
	}
	slog.Warn("ignoring unknown launch mode", "mode", s)
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
