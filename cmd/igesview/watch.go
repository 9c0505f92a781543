package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/zooyer/iges/render"
)

const debounce = 100 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-render the PNG whenever the file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, err := inputFile(args)
			if err != nil {
				return err
			}
			if out == "" {
				out = pngName(filename)
			}

			rebuild := func() error {
				c, err := open(cmd, []string{filename})
				if err != nil {
					return err
				}
				if err = render.SavePNG(out, c.Scene, getConfig(cmd.Context()).Render()); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d primitives -> %s\n", filename, len(c.Scene.Children), out)
				return nil
			}
			if err = rebuild(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return watch(ctx, filename, rebuild, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "PNG file (default: input name with .png)")

	return cmd
}

// watch 监听文件所在目录，编辑器保存时常常是替换文件而不是写入
func watch(ctx context.Context, filename string, rebuild func() error, log io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	target, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err = watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	var (
		timer   *time.Timer
		changes = make(chan struct{}, 1)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, _ := filepath.Abs(event.Name); name != target {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case changes <- struct{}{}:
				default:
				}
			})
		case <-changes:
			if err := rebuild(); err != nil {
				_, _ = fmt.Fprintln(log, "rebuild error:", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			_, _ = fmt.Fprintln(log, "watcher error:", err)
		}
	}
}
