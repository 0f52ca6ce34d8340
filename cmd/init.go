package cmd

import (
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/winlaunch/core/config"
)

// initCmd writes the default launcher configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file beside the executable.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		path := cfgPath
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}

		return config.Initialize(afero.NewOsFs(), path, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
