// Package launcher turns a resolved configuration into the urxvt argument
// vector and runs the terminal, transparently starting the daemon when the
// client reports that none is running.
package launcher

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gryf/urxvt-wrapper/internal/config"
	"github.com/gryf/urxvt-wrapper/internal/font"
)

const (
	clientBin = "urxvtc"
	daemonBin = "urxvtd"
	directBin = "urxvt"

	// urxvtc reserves exit status 2 for "no daemon to connect to",
	// distinct from general failure.
	noServerStatus = 2
)

// ErrServerUnavailable marks a client run that failed only because no
// daemon was listening.
var ErrServerUnavailable = errors.New("no urxvt daemon available")

// Launcher runs the terminal through a Runner.
type Launcher struct {
	runner Runner
}

func New(runner Runner) *Launcher {
	return &Launcher{runner: runner}
}

// BuildArgs assembles the urxvt argument vector from a resolved
// configuration. The order is fixed: extensions, icon, the four font
// roles, then the optional exec command with its trailing arguments
// forwarded verbatim.
func BuildArgs(cfg *config.Config) []string {
	chain := font.Chain{
		Primary:   cfg.PrimaryFont,
		Bitmap:    cfg.BitmapFont,
		Size:      cfg.Size,
		FixedSize: cfg.FixedSize,
		Scalable:  cfg.Scalable,
	}

	args := []string{
		"-pe", strings.Join(cfg.Extensions, ","),
		"-icon", filepath.Join(cfg.IconPath, cfg.Icon),
		"-fn", chain.Spec(font.RoleRegular),
		"-fb", chain.Spec(font.RoleBold),
		"-fi", chain.Spec(font.RoleItalic),
		"-fbi", chain.Spec(font.RoleBoldItalic),
	}
	if cfg.Exec != "" {
		args = append(args, "-e", cfg.Exec)
		args = append(args, cfg.ExecArgs...)
	}
	return args
}

// Program returns the binary a configuration launches.
func Program(cfg *config.Config) string {
	if cfg.Mode == config.ModeDirect {
		return directBin
	}
	return clientBin
}

// Launch runs the terminal and returns its exit status. In daemon mode a
// client failure caused by a missing daemon triggers exactly one recovery:
// start urxvtd detached and retry the client once, returning the retry's
// status unconditionally. Every other non-zero status propagates unchanged.
func (l *Launcher) Launch(ctx context.Context, cfg *config.Config) (int, error) {
	args := BuildArgs(cfg)

	if cfg.Mode == config.ModeDirect {
		return l.runner.Run(ctx, directBin, args...)
	}

	status, err := l.attempt(ctx, args)
	if !errors.Is(err, ErrServerUnavailable) {
		return status, err
	}

	slog.Debug("no urxvt daemon running, starting one")
	// Fire and forget: if the daemon fails to come up, the retry below
	// surfaces the failure on its own.
	_ = l.runner.Start(ctx, daemonBin, "-q", "-f", "-o")

	return l.runner.Run(ctx, clientBin, args...)
}

func (l *Launcher) attempt(ctx context.Context, args []string) (int, error) {
	status, err := l.runner.Run(ctx, clientBin, args...)
	if err != nil {
		return status, err
	}
	if status == noServerStatus {
		return status, ErrServerUnavailable
	}
	return status, nil
}
