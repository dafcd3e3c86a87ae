package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gogpu/cssgrad"
	"github.com/gogpu/cssgrad/internal/encode"
	"github.com/gogpu/cssgrad/internal/watch"
)

// stdoutPath selects standard output as the destination.
const stdoutPath = "-"

type options struct {
	width   int
	height  int
	output  string
	format  string
	file    string
	watch   bool
	verbose bool

	source string
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "cssgrad [gradient]",
		Short: "Render CSS linear-gradient() strings to images",
		Long: "cssgrad rasterizes a CSS linear-gradient() description into a PNG, JPEG, GIF, BMP or TIFF image.\n" +
			"The gradient is taken from the argument or from --file; with --watch the file is re-rendered on every change.",
		Args:         cobra.MaximumNArgs(1),
		Version:      cssgrad.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.source = args[0]
			}
			return o.run(cmd)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&o.width, "width", "W", 100, "image width in pixels")
	f.IntVarP(&o.height, "height", "H", 100, "image height in pixels")
	f.StringVarP(&o.output, "output", "o", "gradient.png", `output file, "-" for standard output`)
	f.StringVarP(&o.format, "format", "f", "", "png, jpeg, gif, bmp or tiff (default: from the output extension)")
	f.StringVar(&o.file, "file", "", "read the gradient from a file")
	f.BoolVar(&o.watch, "watch", false, "re-render whenever --file changes")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log parse recoveries and render details")

	return cmd
}

func (o *options) run(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if o.verbose {
		cssgrad.SetLogger(o.logger)
		defer cssgrad.SetLogger(nil)
	}

	switch {
	case o.source != "" && o.file != "":
		return errors.New("give the gradient as an argument or with --file, not both")
	case o.source == "" && o.file == "":
		return errors.New("no gradient given")
	case o.watch && o.file == "":
		return errors.New("--watch requires --file")
	case o.watch && o.output == stdoutPath:
		return errors.New("--watch cannot write to standard output")
	}

	if err := o.render(cmd.OutOrStdout()); err != nil {
		return err
	}
	if !o.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(o.file, watch.WithErrorHandler(func(err error) {
		o.logger.Error("render failed", slog.Any("error", err))
	}))
	if err != nil {
		return err
	}

	o.logger.Info("watching", slog.String("file", o.file))
	return w.Run(ctx, func() error {
		return o.render(cmd.OutOrStdout())
	})
}

// render parses the gradient, rasterizes it and writes the image.
func (o *options) render(stdout io.Writer) error {
	src := o.source
	if o.file != "" {
		data, err := os.ReadFile(o.file)
		if err != nil {
			return fmt.Errorf("read gradient: %w", err)
		}
		src = string(data)
	}

	g, err := cssgrad.ParseGradient(strings.TrimSpace(src))
	if err != nil {
		return err
	}

	format, err := o.outputFormat()
	if err != nil {
		return err
	}

	img := g.Render(o.width, o.height).ToImage()
	if o.output == stdoutPath {
		return encode.Encode(stdout, img, format)
	}
	if err := encode.WriteFile(o.output, img, format); err != nil {
		return err
	}

	o.logger.Info("rendered",
		slog.String("output", o.output),
		slog.String("format", format.String()),
		slog.Int("width", img.Rect.Dx()),
		slog.Int("height", img.Rect.Dy()))
	return nil
}

func (o *options) outputFormat() (encode.Format, error) {
	if o.format != "" {
		return encode.ParseFormat(o.format)
	}
	if o.output == stdoutPath {
		return encode.PNG, nil
	}
	return encode.FormatFromPath(o.output)
}
