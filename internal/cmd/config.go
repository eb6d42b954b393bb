package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gryf/urxvt-wrapper/internal/config"
	"github.com/gryf/urxvt-wrapper/internal/env"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change the stored defaults",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.GlobalConfigPath(env.New()))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store a default in the config file",
	Long: "Store a default in the config file. Known keys: " +
		strings.Join(config.FileKeys, ", ") +
		". The extensions key takes a comma-separated list.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := config.Load(env.New(), wd)
		if err != nil {
			return err
		}
		key, value := args[0], args[1]
		if key == "extensions" {
			return cfg.SetField(key, strings.Split(value, ","))
		}
		return cfg.SetField(key, value)
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
