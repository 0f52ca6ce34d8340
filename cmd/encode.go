package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/winlaunch/core/cmdline"
	"github.com/josephlewis42/winlaunch/core/launcher"
)

var encodeRoundtrip bool

// encodeCmd prints the command line that would be spawned, without
// spawning anything. Handy for debugging quoting problems.
var encodeCmd = &cobra.Command{
	Use:   "encode PROG [ARG...]",
	Short: "Print the encoded command line without running it.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		encoded := launcher.New(cfg).Encode(args)
		fmt.Fprintln(cmd.OutOrStdout(), encoded)

		if encodeRoundtrip {
			for _, arg := range cmdline.Split(encoded) {
				fmt.Fprintf(cmd.OutOrStdout(), "%q\n", arg)
			}
		}

		return nil
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeRoundtrip, "roundtrip", false,
		"also re-tokenize the encoded line and print the argument list the spawned program would see")
	encodeCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(encodeCmd)
}
