package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom"
)

func newViewCommand() *cobra.Command {
	var (
		flags         optionFlags
		width, height int
		imagePath     string
		screenshotDir string
		watch         bool
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the viewport in a window",
		Long: `Opens an Ebitengine window with the canvas and a minimap. With --image the
canvas shows the image and defaults to its size.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var content *ebiten.Image
			if imagePath != "" {
				img, _, err := ebitenutil.NewImageFromFile(imagePath)
				if err != nil {
					return fmt.Errorf("load image: %w", err)
				}
				content = img
				b := img.Bounds()
				if !cmd.Flags().Changed("canvas-width") {
					flags.canvasWidth = float64(b.Dx())
				}
				if !cmd.Flags().Changed("canvas-height") {
					flags.canvasHeight = float64(b.Dy())
				}
			}
			opts, err := flags.load(cmd)
			if err != nil {
				return err
			}
			reload, err := flags.reloadChannel(cmd, watch)
			if err != nil {
				return err
			}
			return panzoom.Run(panzoom.HostConfig{
				Title:         "panzoom",
				Width:         width,
				Height:        height,
				Options:       opts,
				Content:       content,
				ScreenshotDir: screenshotDir,
				Reload:        reload,
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 1024, "Window width")
	cmd.Flags().IntVar(&height, "height", 768, "Window height")
	cmd.Flags().StringVar(&imagePath, "image", "", "Image to show on the canvas")
	cmd.Flags().StringVar(&screenshotDir, "screenshots", "screenshots", "Directory for F12 screenshots")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload --config when it changes")
	return cmd
}
