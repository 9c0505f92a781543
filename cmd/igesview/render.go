package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zooyer/iges/render"
)

func newRenderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a top view PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd, args)
			if err != nil {
				return err
			}

			filename := out
			if filename == "" {
				filename = pngName(c.Source)
			}
			if render.Bounds(c.Scene).Empty() {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "nothing to draw")
			}
			if err = render.SavePNG(filename, c.Scene, getConfig(cmd.Context()).Render()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d primitives -> %s\n", c.Source, len(c.Scene.Children), filename)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&out, "out", "", "PNG file (default: input name with .png)")
	flags.Int("width", 0, "image width")
	flags.Int("height", 0, "image height")
	flags.Float64("margin", 0, "image margin")
	flags.String("background", "", "background color")
	flags.Float64("line-width", 0, "override line width")
	flags.Float64("point-size", 0, "override point size")

	return cmd
}

func pngName(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + ".png"
}
