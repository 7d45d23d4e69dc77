package main

import (
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/gogpu/caption"
	"github.com/gogpu/caption/canvas"
	"github.com/gogpu/caption/transcript"
)

const framePattern = "frame_%05d.png"

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var (
		fps        float64
		workers    int
		outDir     string
		mp4        string
		audio      string
		background string
		srt        string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every frame to a PNG sequence and optionally an MP4",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.compositor(cmd)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			var bg *image.RGBA
			if background != "" {
				img, err := readImage(background)
				if err != nil {
					return err
				}
				a := c.SafeArea()
				bg = canvas.Cover(img, a.Width, a.Height)
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			started := time.Now()
			blank := c.Blank()
			err = c.RenderFrames(runCtx, fps, workers, func(i int, f caption.Frame) error {
				img := f.Image
				if img == nil {
					img = blank
				}
				if bg != nil {
					img = canvas.Compose(bg, img)
				}
				return writePNG(filepath.Join(outDir, fmt.Sprintf(framePattern, i)), img)
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Rendered %d frames to %s in %s\n",
				c.FrameCount(fps), outDir, time.Since(started).Round(time.Millisecond))

			if srt != "" {
				if err := writeSRT(srt, c.Windows()); err != nil {
					return err
				}
				fmt.Fprintf(w, "Wrote subtitles to %s\n", srt)
			}
			if mp4 != "" {
				if err := encodeMP4(filepath.Join(outDir, framePattern), fps, audio, mp4); err != nil {
					return err
				}
				fmt.Fprintf(w, "Encoded %s\n", mp4)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&fps, "fps", 30, "Frames per second")
	flags.IntVar(&workers, "workers", 0, "Render goroutines (0 uses GOMAXPROCS)")
	flags.StringVarP(&outDir, "out-dir", "o", "frames", "Directory for the PNG sequence")
	flags.StringVar(&mp4, "mp4", "", "Encode the sequence to this MP4 with ffmpeg")
	flags.StringVar(&audio, "audio", "", "Audio track muxed into the MP4")
	flags.StringVar(&background, "background", "", "Image composited under every frame")
	flags.StringVar(&srt, "srt", "", "Also write the windows as an SRT file")
	return cmd
}

func writeSRT(path string, windows []caption.Window) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := transcript.WriteSRT(f, windows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// encodeMP4 runs ffmpeg over the PNG sequence, muxing audio when given.
func encodeMP4(pattern string, fps float64, audio, out string) error {
	rate := strconv.FormatFloat(fps, 'f', -1, 64)
	video := ffmpeg.Input(pattern, ffmpeg.KwArgs{"framerate": rate})
	args := ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
		"preset":  "fast",
	}

	var stream *ffmpeg.Stream
	if audio == "" {
		stream = video.Output(out, args)
	} else {
		args["c:a"] = "aac"
		args["b:a"] = "192k"
		args["shortest"] = ""
		stream = ffmpeg.Output([]*ffmpeg.Stream{video, ffmpeg.Input(audio)}, out, args)
	}
	if err := stream.OverWriteOutput().Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}
