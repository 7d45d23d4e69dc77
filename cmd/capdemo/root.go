package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/caption"
	"github.com/gogpu/caption/canvas"
	"github.com/gogpu/caption/style"
	"github.com/gogpu/caption/transcript"
	"github.com/gogpu/caption/typeface"
)

// commandContext holds the flags shared by every subcommand.
type commandContext struct {
	catalog    string
	transcript string
	styleName  string
	fontDirs   []string
	width      int
	height     int
	position   string
	safeZones  bool
	verbose    bool
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "capdemo",
		Short:         "Render word-synchronized caption styles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if ctx.verbose {
				level = slog.LevelDebug
			}
			caption.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.catalog, "catalog", "c", "", "Style catalog file (.json or .toml); built-in styles when empty")
	flags.StringVarP(&ctx.transcript, "transcript", "t", "", "Word timestamp JSON file")
	flags.StringVarP(&ctx.styleName, "style", "s", "glow", "Style name")
	flags.StringSliceVar(&ctx.fontDirs, "font-dir", nil, "Directories searched for font families")
	flags.IntVar(&ctx.width, "width", caption.DefaultWidth, "Canvas width in pixels")
	flags.IntVar(&ctx.height, "height", caption.DefaultHeight, "Canvas height in pixels")
	flags.StringVar(&ctx.position, "position", "", "Override the style position (top, center, bottom)")
	flags.BoolVar(&ctx.safeZones, "safe-zones", true, "Keep captions inside platform safe zones")
	flags.BoolVarP(&ctx.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newStylesCommand(ctx))
	rootCmd.AddCommand(newFrameCommand(ctx))
	rootCmd.AddCommand(newRenderCommand(ctx))
	return rootCmd
}

func (c *commandContext) loadCatalog() (*style.Catalog, error) {
	if c.catalog == "" {
		return style.Builtin(), nil
	}
	return style.LoadCatalog(c.catalog)
}

func (c *commandContext) loadWords() ([]caption.Word, error) {
	if c.transcript == "" {
		return nil, fmt.Errorf("--transcript is required")
	}
	t, err := transcript.Load(c.transcript)
	if err != nil {
		return nil, err
	}
	return t.Words, nil
}

// compositor builds a compositor from the shared flags.
func (c *commandContext) compositor(cmd *cobra.Command) (*caption.Compositor, error) {
	cat, err := c.loadCatalog()
	if err != nil {
		return nil, err
	}
	s, err := cat.Get(c.styleName)
	if err != nil {
		return nil, err
	}
	words, err := c.loadWords()
	if err != nil {
		return nil, err
	}

	opts := []caption.Option{
		caption.WithResolution(c.width, c.height),
		caption.WithFontResolver(typeface.DirResolver{Dirs: c.fontDirs}),
	}
	if c.position != "" {
		p, ok := style.ParsePosition(c.position)
		if !ok {
			return nil, fmt.Errorf("unknown position %q", c.position)
		}
		opts = append(opts, caption.WithPosition(canvas.Anchor(p)))
	}
	if cmd.Flags().Changed("safe-zones") {
		opts = append(opts, caption.WithSafeZones(c.safeZones))
	}
	return caption.New(words, s, opts...)
}
