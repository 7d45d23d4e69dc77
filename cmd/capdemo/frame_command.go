package main

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/gogpu/caption/canvas"
)

func newFrameCommand(ctx *commandContext) *cobra.Command {
	var (
		at         float64
		out        string
		background string
	)

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Render the caption at one point in time to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.compositor(cmd)
			if err != nil {
				return err
			}
			f, ok := c.RenderFrame(at)
			img := f.Image
			if !ok {
				img = c.Blank()
			}

			var result image.Image = img
			if background != "" {
				bg, err := readImage(background)
				if err != nil {
					return err
				}
				result = canvas.Compose(bg, img)
			}
			if err := writePNG(out, result); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintf(w, "No caption at %.3fs; wrote empty frame to %s\n", at, out)
				return nil
			}
			fmt.Fprintf(w, "Wrote %s: window %d, word %d, placed at %v\n", out, f.Window, f.Highlight, f.Rect)
			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "time", 0, "Query time in seconds")
	cmd.Flags().StringVarP(&out, "out", "o", "frame.png", "Output PNG path")
	cmd.Flags().StringVar(&background, "background", "", "Image composited under the caption")
	return cmd
}
