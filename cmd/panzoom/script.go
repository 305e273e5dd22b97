package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom"
)

// maxScriptFrames bounds a headless run so a malformed script cannot spin.
const maxScriptFrames = 100000

func newScriptCommand() *cobra.Command {
	var (
		flags         optionFlags
		width, height int
		screenshotDir string
		visual        bool
	)

	cmd := &cobra.Command{
		Use:   "script FILE",
		Short: "Replay a JSON interaction script",
		Long: `Replays press/move/release/drag/wheel/key/wait/screenshot steps against the
viewport. Headless by default: screenshots are flat-color snapshots and the
final transform is printed. With --visual the script runs in a window.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := panzoom.LoadScriptFile(args[0])
			if err != nil {
				return err
			}
			opts, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if visual {
				return panzoom.Run(panzoom.HostConfig{
					Title:            "panzoom script",
					Width:            width,
					Height:           height,
					Options:          opts,
					Script:           runner,
					ExitOnScriptDone: true,
					ScreenshotDir:    screenshotDir,
				})
			}
			return runHeadless(cmd.OutOrStdout(), runner, opts, width, height, screenshotDir)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 1024, "Page width")
	cmd.Flags().IntVar(&height, "height", 768, "Page height")
	cmd.Flags().StringVar(&screenshotDir, "screenshots", "screenshots", "Directory for screenshot steps")
	cmd.Flags().BoolVar(&visual, "visual", false, "Run in a window instead of headless")
	return cmd
}

// runHeadless drives a page and designer frame by frame until the script
// is done, then prints the final transform.
func runHeadless(out io.Writer, runner *panzoom.ScriptRunner, opts panzoom.Options, width, height int, screenshotDir string) error {
	page := panzoom.NewPage(float64(width), float64(height))
	container := panzoom.NewBox("container", panzoom.Rect{Width: float64(width), Height: float64(height)})
	page.Add(container)
	panel := panzoom.NewBox("navigator", panzoom.Rect{
		X: float64(width) - 216, Y: float64(height) - 166, Width: 200, Height: 150,
	})
	d := panzoom.NewDesigner(panzoom.Config{
		Container: container,
		Window:    page,
		Navigator: panel,
		Options:   opts,
	})
	defer d.Close()

	var shotErr error
	runner.OnScreenshot(func(label string) {
		path, err := panzoom.WriteSnapshot(screenshotDir, label, page, d)
		if err != nil {
			shotErr = err
			return
		}
		fmt.Fprintf(out, "screenshot %s\n", path)
	})

	const dt = float32(1.0 / 60)
	frames := 0
	for !runner.Done() || page.Pending() > 0 || d.Viewport().Animating() {
		if frames++; frames > maxScriptFrames {
			return fmt.Errorf("script did not finish within %d frames", maxScriptFrames)
		}
		runner.Step(page)
		page.Step()
		d.Update(dt)
		if shotErr != nil {
			return shotErr
		}
	}

	ev := d.Viewport().Event()
	fmt.Fprintf(out, "frames %d\nscale %.4f\ntranslate %.2f %.2f\norigin %.2f %.2f\nrect %.2f %.2f %.2f %.2f\n",
		frames, ev.Scale, ev.TranslateX, ev.TranslateY, ev.OriginX, ev.OriginY,
		ev.Rect.X, ev.Rect.Y, ev.Rect.Width, ev.Rect.Height)
	return nil
}
