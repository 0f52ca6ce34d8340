package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/winlaunch/core/cmdline"
)

// builtinsCmd shows the effective shell builtin table.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the command names treated as shell builtins.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		for _, name := range cmdline.NewBuiltinSet(cfg.ExtraBuiltins...).Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
