package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meetscribe/internal/config"
	"github.com/nguyentantai21042004/meetscribe/internal/logger"
)

type rootOptions struct {
	configPath string
	cfg        *config.Config
	log        logger.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "meetscribe",
		Short: "Turn meeting recordings into transcripts, summaries and action items.",
		Long: `meetscribe transcribes meeting audio with Whisper and asks a language model for a
concise summary and the list of action items. It runs as an HTTP API, as a drop-folder
watcher, or once on a single file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.log = logger.New(cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "path to the YAML configuration file")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newWatchCommand(opts))
	cmd.AddCommand(newProcessCommand(opts))
	return cmd
}
