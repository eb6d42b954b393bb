package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/gryf/urxvt-wrapper/internal/font"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts [family...]",
	Short: "List fonts usable in the fallback chain",
	Long: heredoc.Doc(`
		Scan the fonts known to fontconfig and print the ones carrying a
		style usable for a terminal face, with the styles they advertise.
		Given family names, print only those and fail when one is missing.
		This is informational only: launching never checks that the
		configured families exist.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		fonts, err := font.Installed(cmd.Context())
		if err != nil {
			return err
		}
		if len(args) == 0 {
			names := make([]string, 0, len(fonts))
			for name := range fonts {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(fonts[name], ", "))
			}
			return nil
		}
		for _, name := range args {
			regular, err := font.StyleFor(fonts, name, false)
			if err != nil {
				return err
			}
			bold, err := font.StyleFor(fonts, name, true)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: regular=%s bold=%s\n", name, regular, bold)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fontsCmd)
}
