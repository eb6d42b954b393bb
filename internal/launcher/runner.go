package launcher

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Runner executes external commands. Run blocks until the command exits
// and reports its exit status; Start fires a command off without waiting
// for its outcome.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (int, error)
	Start(ctx context.Context, name string, args ...string) error
}

// NewRunner returns a Runner backed by os/exec with the wrapper's
// standard streams attached, so the terminal session owns the tty for as
// long as it runs.
func NewRunner() Runner {
	return execRunner{}
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

func (execRunner) Start(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child once it daemonizes.
	go func() { _ = cmd.Wait() }()
	return nil
}
