package main

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meetscribe/internal/audio"
	"github.com/nguyentantai21042004/meetscribe/internal/processor"
	"github.com/nguyentantai21042004/meetscribe/internal/watcher"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process recordings dropped into the input folder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := opts.cfg
			log := opts.log

			dirs := processor.Dirs{
				Archived: cfg.Paths.Archived,
				Rejected: filepath.Join(cfg.Paths.Archived, "rejected"),
				Failed:   filepath.Join(cfg.Paths.Archived, "failed"),
			}
			if err := ensureDirectories(cfg.Paths.Input, cfg.Paths.Output, dirs.Archived); err != nil {
				return err
			}
			if cfg.Storage.DatabasePath != "" {
				if err := ensureDirectories(filepath.Dir(cfg.Storage.DatabasePath)); err != nil {
					return err
				}
			}

			a, err := buildApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			proc := processor.New(a.fs, a.pipeline, a.reports, a.meetings, dirs, log)
			validator := audio.NewValidator(cfg.Audio.AllowedExtensions)

			w, err := watcher.New(cfg.Paths.Input, validator.Allowed, proc.Process, watcher.Options{
				MaxConcurrent: cfg.Performance.MaxConcurrent,
				SettleDelay:   cfg.Performance.SettleDelay,
				ScanExisting:  true,
			}, log)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(ctx, "========================================")
			log.Info(ctx, "Meeting pipeline is ready!")
			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Concurrent: %d recordings at once", cfg.Performance.MaxConcurrent)
			log.Info(ctx, "Press Ctrl+C to stop")
			log.Info(ctx, "========================================")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			log.Info(ctx, "Meeting pipeline stopped")
			return nil
		},
	}
}
