package config

import (
	"path/filepath"
	"slices"

	"github.com/gryf/urxvt-wrapper/internal/env"
)

// Defaults is the immutable built-in configuration layer. It sits below
// config files, environment variables and flags in the override order.
type Defaults struct {
	Size         string
	FixedSize    string
	Icon         string
	IconPath     string
	PrimaryFont  string
	BitmapFont   string
	Extensions   []string
	TabExtension string
	Mode         LaunchMode
}

// BuiltinDefaults returns the compiled-in defaults. FixedSize is left
// empty, meaning "mirror the resolved font size".
func BuiltinDefaults(e env.Env) Defaults {
	return Defaults{
		Size:        "14",
		Icon:        "tilda.png",
		IconPath:    filepath.Join(HomeDir(e), "GNUstep", "Library", "Icons"),
		PrimaryFont: "DejaVuSansMono Nerd Font Mono",
		BitmapFont:  "Misc Fixed",
		Extensions: []string{
			"selection-to-clipboard",
			"url-select",
			"keyboard-select",
			"font-size",
		},
		TabExtension: "tabbedex",
		Mode:         ModeDaemon,
	}
}

func (d Defaults) clone() Defaults {
	d.Extensions = slices.Clone(d.Extensions)
	return d
}
