package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meetscribe/internal/httpapi"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := opts.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}

			if cfg.Storage.DatabasePath != "" {
				if err := ensureDirectories(filepath.Dir(cfg.Storage.DatabasePath)); err != nil {
					return err
				}
			}

			a, err := buildApp(ctx, cfg, opts.log)
			if err != nil {
				return err
			}
			defer a.Close()

			srv := httpapi.New(httpapi.Options{
				Addr:           cfg.Server.Addr,
				CORSOrigins:    cfg.Server.CORSOrigins,
				MaxUploadBytes: cfg.Audio.MaxUploadBytes,
				MaxConcurrent:  cfg.Performance.MaxConcurrent,
			}, a.pipeline, a.meetings, a.log)

			opts.log.Info(ctx, "Transcriber: %s, summarizer: %s", cfg.Transcriber.Backend, cfg.Summarizer.Backend)
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
