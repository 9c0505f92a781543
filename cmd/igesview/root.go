package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/zooyer/iges"
	"github.com/zooyer/iges/config"
	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/store"
)

var Version = "0.1.0"

type configKey struct{}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:     "igesview",
		Short:   "IGES viewer",
		Long:    "igesview decodes IGES files, prints their entities and diagnostics, renders a top view PNG and exports a catalog.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			setLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.Verbose && cfg.File != "" {
				slog.Debug("using config file", "file", cfg.File)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+")")
	flags.BoolP("verbose", "v", false, "print debug diagnostics")
	flags.Bool("debug", false, "cross-check directory pointers against parameter lines")
	flags.Int("workers", 0, "entities synthesized in parallel (0: number of CPUs)")
	flags.StringP("output", "o", config.DefaultOutput, "output format (table|json)")
	flags.Bool("pause", false, "wait for a key press before exiting")

	root.AddCommand(
		newInfoCmd(),
		newRenderCmd(),
		newExportCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	return root
}

// setLogger 诊断写到 stderr，verbose 时包含 debug 级别
func setLogger(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	core.SetLogger(logger)
	slog.SetDefault(logger)
}

func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	c, _ := config.Load("", nil)
	return c
}

// inputFile 未指定文件时弹出文件选择框
func inputFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	filename, err := zenity.SelectFile(
		zenity.Title("Select an IGES file"),
		zenity.FileFilters{
			{Name: "IGES files", Patterns: []string{"*.igs", "*.iges"}, CaseFold: true},
		},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", errors.New("no input file")
	}
	return filename, err
}

// open 解码并生成图元
func open(cmd *cobra.Command, args []string) (store.Catalog, error) {
	filename, err := inputFile(args)
	if err != nil {
		return store.Catalog{}, err
	}

	cfg := getConfig(cmd.Context())
	doc, err := iges.Open(filename, cfg.Options()...)
	if err != nil {
		return store.Catalog{}, fmt.Errorf("%s: %w", filename, err)
	}

	return store.NewCatalog(filename, doc), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "igesview %s\n", Version)
		},
	}
}
