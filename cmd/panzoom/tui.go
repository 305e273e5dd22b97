package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom/tui"
)

func newTUICommand() *cobra.Command {
	var (
		flags optionFlags
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the viewport in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.load(cmd)
			if err != nil {
				return err
			}
			// Debug lines would tear the alternate screen.
			opts.Debug = false
			reload, err := flags.reloadChannel(cmd, watch)
			if err != nil {
				return err
			}
			return tui.Run(opts, reload)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload --config when it changes")
	return cmd
}
