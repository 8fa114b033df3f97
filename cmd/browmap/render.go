package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/browmap/internal/camera"
	"github.com/philipparndt/browmap/internal/export"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/internal/render"
	"github.com/spf13/cobra"
)

type outputFlags struct {
	output    string
	width     int
	height    int
	scale     float64
	quality   int
	noGrid    bool
	noHandles bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "output file (.png, .jpg, .webp or .svg)")
	f.IntVar(&o.width, "width", 0, "output width (default: background width)")
	f.IntVar(&o.height, "height", 0, "output height (default: background height)")
	f.Float64Var(&o.scale, "scale", 1, "output pixels per overlay unit")
	f.IntVar(&o.quality, "quality", 90, "JPEG quality")
	f.BoolVar(&o.noGrid, "no-grid", false, "omit the visagism grid")
	f.BoolVar(&o.noHandles, "no-handles", false, "omit the handles")
	_ = cmd.MarkFlagRequired("output")
}

func (o *outputFlags) options() export.Options {
	opts := export.DefaultOptions()
	opts.Size = image.Pt(o.width, o.height)
	opts.Scale = o.scale
	opts.Render.HideGrid = o.noGrid
	return opts
}

func (o *outputFlags) config(cfg overlay.Config) overlay.Config {
	if o.noHandles {
		cfg.ShowGuides = false
	}
	return cfg
}

// write exports cfg over frame into o.output
func (o *outputFlags) write(frame image.Image, cfg overlay.Config) error {
	cfg = o.config(cfg)
	opts := o.options()

	if strings.EqualFold(filepath.Ext(o.output), ".svg") {
		size := opts.Size
		if size.X <= 0 || size.Y <= 0 {
			size = export.DefaultSize
			if frame != nil {
				size = frame.Bounds().Size()
			}
		}
		scene := render.Build(cfg, render.Viewport{Width: float64(size.X), Height: float64(size.Y), Scale: o.scale}, opts.Render)
		f, err := os.Create(o.output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", o.output, err)
		}
		defer f.Close()
		return render.WriteSVG(f, scene)
	}

	return export.WriteFile(o.output, export.Compose(frame, cfg, opts), o.quality)
}

var (
	renderOut   outputFlags
	renderImage string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the saved overlay onto a photo or a blank canvas",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderOut.register(renderCmd)
	renderCmd.Flags().StringVar(&renderImage, "image", "", "background photo (PNG, JPEG or WebP)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	log := global.logger()
	cfg := global.store(log).Load()

	var frame image.Image
	if renderImage != "" {
		img, err := camera.LoadImage(renderImage)
		if err != nil {
			return err
		}
		frame = img
	}

	if err := renderOut.write(frame, cfg); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", renderOut.output)
	return nil
}
