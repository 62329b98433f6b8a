package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"volumetrico/internal/service"
	"volumetrico/internal/validator/report"
)

// settleDelay collapses the burst of write events an editor produces for one save.
const settleDelay = 300 * time.Millisecond

func newWatchCmd(root *rootOptions) *cobra.Command {
	var checkFileName bool

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Re-validate .json reports whenever they are written in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(args[0])
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", args[0])
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := service.NewValidationService(report.NewEngine(), nil, &root.cfg.Validation, nil)
			fmt.Fprintf(cmd.OutOrStdout(), "Vigilando %s (Ctrl+C para salir)\n", args[0])
			return watchDir(ctx, args[0], svc, checkFileName, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&checkFileName, "check-filename", false, "check the regulator file-name convention")
	return cmd
}

// watchDir validates each report created or written in dir until ctx ends.
func watchDir(ctx context.Context, dir string, svc service.ValidationService, checkFileName bool, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	strict := true
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(settleDelay / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isReport(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				pending[event.Name] = time.Now()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("cvcheck.watch: watcher error: %v", err)

		case now := <-ticker.C:
			for path, seen := range pending {
				if now.Sub(seen) < settleDelay {
					continue
				}
				delete(pending, path)
				o := validateFile(ctx, svc, path, &checkFileName, &strict)
				if err := renderText(out, []outcome{o}); err != nil {
					return err
				}
			}
		}
	}
}
