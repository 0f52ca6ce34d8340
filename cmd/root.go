package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/winlaunch/core/config"
	"github.com/josephlewis42/winlaunch/core/launcher"
)

var cfgPath string

var fatalMarker = color.New(color.FgRed, color.Bold).SprintFunc()

func loadConfig() (*config.Configuration, error) {
	return config.Load(afero.NewOsFs(), cfgPath)
}

// rootCmd runs the given program bound to the launcher's lifetime.
var rootCmd = &cobra.Command{
	Use:   "winlaunch PROG [ARG...]",
	Short: "Run a program with lossless argument passing and a bound lifetime.",
	Long: `winlaunch re-encodes its argument list into a single command line
that the target program decodes back into the exact same list, runs
shell builtins like "cd" or "dir" through the configured shell, and
ties the child process and all of its descendants to winlaunch's own
lifetime so nothing is left running when winlaunch dies.

The child's exit status becomes winlaunch's exit status; 127 means the
program couldn't be found. Use "--" before PROG if its name collides
with a winlaunch subcommand.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		code, err := launcher.New(cfg).Run(args)
		if err != nil {
			return err
		}
		os.Exit(code)
		return nil
	},
}

// Execute runs the root command, exiting 1 with a FATAL diagnostic on
// unrecoverable errors. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", fatalMarker("FATAL:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"config file (default: "+config.ConfigurationName+" beside the executable)")
	// Everything after PROG belongs to the child, not to winlaunch.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.SilenceErrors = true
}
