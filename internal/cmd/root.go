// Package cmd wires the command-line surface to the resolver and the
// launcher.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/log/v2"
	"github.com/spf13/cobra"

	"github.com/gryf/urxvt-wrapper/internal/config"
	"github.com/gryf/urxvt-wrapper/internal/env"
	"github.com/gryf/urxvt-wrapper/internal/launcher"
)

var launchFlags struct {
	icon         string
	size         string
	execute      string
	tabbed       bool
	fixed        bool
	noExtensions bool
	direct       bool
	dryRun       bool
	debug        bool
}

var rootCmd = &cobra.Command{
	Use:   "urxvt-wrapper [flags] [-- args...]",
	Short: "Launch urxvt with curated fonts, icon and extensions",
	Long: heredoc.Doc(`
		urxvt-wrapper assembles a urxvt command line with a sensible font
		fallback chain, an icon and a set of perl extensions, then runs the
		terminal through the urxvtc/urxvtd pair, starting the daemon on
		demand. Values come from built-in defaults, the config files, the
		URXVT_* environment variables and the flags below, in rising
		precedence. Arguments after -- are forwarded verbatim to the
		command given with --execute.
	`),
	Example: heredoc.Doc(`
		# plain terminal with the default fonts
		urxvt-wrapper

		# bigger fonts, tab bar, run mutt inside
		urxvt-wrapper -t -s 18 -e mutt
	`),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
		if launchFlags.debug {
			logger.SetLevel(log.DebugLevel)
		}
		slog.SetDefault(slog.New(logger))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := config.Load(env.New(), wd)
		if err != nil {
			return err
		}
		cfg.Apply(overrides(cmd, args))

		if launchFlags.dryRun {
			fmt.Fprintln(cmd.OutOrStdout(), commandLine(launcher.Program(cfg), launcher.BuildArgs(cfg)))
			return nil
		}

		status, err := launcher.New(launcher.NewRunner()).Launch(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if status != 0 {
			// Mirror the terminal's own exit status, silently.
			os.Exit(status)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&launchFlags.icon, "icon", "i", "", "icon filename to use")
	flags.BoolVarP(&launchFlags.tabbed, "tabbed", "t", false, "activate the tab-bar extension")
	flags.StringVarP(&launchFlags.size, "size", "s", "", "font pixel size")
	flags.BoolVarP(&launchFlags.fixed, "fixed", "f", false, "use the bitmap rendering backend")
	flags.StringVarP(&launchFlags.execute, "execute", "e", "", "command to run inside the terminal")
	flags.BoolVarP(&launchFlags.noExtensions, "no-extensions", "n", false, "disable all perl extensions")
	flags.BoolVar(&launchFlags.direct, "direct", false, "run urxvt directly, skipping the daemon")
	flags.BoolVarP(&launchFlags.dryRun, "dry-run", "p", false, "print the assembled command line instead of running it")
	rootCmd.PersistentFlags().BoolVar(&launchFlags.debug, "debug", false, "enable debug logging")
}

// RootCmd returns the root command for execution from main.
func RootCmd() *cobra.Command {
	return rootCmd
}

func overrides(cmd *cobra.Command, args []string) config.Overrides {
	o := config.Overrides{
		Tabbed:       launchFlags.tabbed,
		FixedBackend: launchFlags.fixed,
		NoExtensions: launchFlags.noExtensions,
		Direct:       launchFlags.direct,
	}
	if cmd.Flags().Changed("icon") {
		o.Icon = &launchFlags.icon
	}
	if cmd.Flags().Changed("size") {
		o.Size = &launchFlags.size
	}
	if cmd.Flags().Changed("execute") {
		o.Exec = &launchFlags.execute
		o.ExecArgs = args
	}
	return o
}

// commandLine renders an argument vector for display, quoting only what
// the shell would mangle.
func commandLine(program string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, program)
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t'\"") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
