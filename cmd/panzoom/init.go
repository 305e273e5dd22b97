package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom"
)

func newInitCommand() *cobra.Command {
	var (
		flags optionFlags
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init FILE",
		Short: "Write an options file with the current defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			opts, err := flags.apply(cmd, panzoom.DefaultOptions(flags.canvasWidth, flags.canvasHeight))
			if err != nil {
				return err
			}
			movable := opts.Movable()
			opts.MovableWhenContained = &movable
			data, err := opts.Encode()
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
