package launcher

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gryf/urxvt-wrapper/internal/config"
)

type call struct {
	name    string
	args    []string
	started bool
}

type fakeRunner struct {
	calls    []call
	statuses []int
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (int, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	status := 0
	if len(f.statuses) > 0 {
		status, f.statuses = f.statuses[0], f.statuses[1:]
	}
	return status, nil
}

func (f *fakeRunner) Start(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args, started: true})
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Size:         "14",
		FixedSize:    "14",
		Icon:         "tilda.png",
		IconPath:     "/home/gryf/GNUstep/Library/Icons",
		PrimaryFont:  "DejaVuSansMono Nerd Font Mono",
		BitmapFont:   "Misc Fixed",
		Extensions:   []string{"selection-to-clipboard", "url-select", "keyboard-select", "font-size"},
		TabExtension: "tabbedex",
		Scalable:     true,
		Mode:         config.ModeDaemon,
	}
}

func TestBuildArgsOrder(t *testing.T) {
	t.Parallel()
	args := BuildArgs(testConfig())

	require.GreaterOrEqual(t, len(args), 12)
	assert.Equal(t, "-pe", args[0])
	assert.Equal(t, "selection-to-clipboard,url-select,keyboard-select,font-size", args[1])
	assert.Equal(t, "-icon", args[2])
	assert.Equal(t, filepath.Join("/home/gryf/GNUstep/Library/Icons", "tilda.png"), args[3])
	assert.Equal(t, "-fn", args[4])
	assert.Equal(t, "-fb", args[6])
	assert.Equal(t, "-fi", args[8])
	assert.Equal(t, "-fbi", args[10])
	assert.Len(t, args, 12, "no exec flag without an exec command")
}

func TestBuildArgsExecTail(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Exec = "mutt"
	cfg.ExecArgs = []string{"-f", "=inbox"}

	args := BuildArgs(cfg)
	assert.Equal(t, []string{"-e", "mutt", "-f", "=inbox"}, args[len(args)-4:])
}

func TestBuildArgsClearedExtensions(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Extensions = nil

	args := BuildArgs(cfg)
	assert.Equal(t, "-pe", args[0])
	assert.Equal(t, "", args[1], "extension flag carries an empty value when cleared")
}

func TestBuildArgsTabbedFirst(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Apply(config.Overrides{Tabbed: true})

	args := BuildArgs(cfg)
	assert.True(t, strings.HasPrefix(args[1], "tabbedex,selection-to-clipboard,"))
}

func TestBuildArgsDeterministic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, BuildArgs(testConfig()), BuildArgs(testConfig()))
}

func TestLaunchSuccess(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{statuses: []int{0}}
	status, err := New(runner).Launch(context.Background(), testConfig())

	require.NoError(t, err)
	assert.Zero(t, status)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "urxvtc", runner.calls[0].name)
}

func TestLaunchNoServerRetries(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{statuses: []int{2, 0}}
	status, err := New(runner).Launch(context.Background(), testConfig())

	require.NoError(t, err)
	assert.Zero(t, status)
	require.Len(t, runner.calls, 3)
	assert.Equal(t, "urxvtc", runner.calls[0].name)
	assert.Equal(t, "urxvtd", runner.calls[1].name)
	assert.True(t, runner.calls[1].started, "daemon is started fire-and-forget")
	assert.Equal(t, []string{"-q", "-f", "-o"}, runner.calls[1].args)
	assert.Equal(t, "urxvtc", runner.calls[2].name)
	assert.Equal(t, runner.calls[0].args, runner.calls[2].args, "retry reuses the same argument vector")
}

func TestLaunchRetryStatusPropagates(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{statuses: []int{2, 5}}
	status, err := New(runner).Launch(context.Background(), testConfig())

	require.NoError(t, err)
	assert.Equal(t, 5, status, "retry status is returned unconditionally")
	assert.Len(t, runner.calls, 3, "only one retry")
}

func TestLaunchOtherFailureNotRetried(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{statuses: []int{3}}
	status, err := New(runner).Launch(context.Background(), testConfig())

	require.NoError(t, err)
	assert.Equal(t, 3, status)
	assert.Len(t, runner.calls, 1)
}

func TestLaunchDirectMode(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Mode = config.ModeDirect

	runner := &fakeRunner{statuses: []int{2}}
	status, err := New(runner).Launch(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, 2, status, "direct mode has no daemon recovery")
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "urxvt", runner.calls[0].name)
}

func TestProgram(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	assert.Equal(t, "urxvtc", Program(cfg))
	cfg.Mode = config.ModeDirect
	assert.Equal(t, "urxvt", Program(cfg))
}
