package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
	"github.com/nguyentantai21042004/meetscribe/internal/report"
)

func newProcessCommand(opts *rootOptions) *cobra.Command {
	var writeReport bool

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Process one recording and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithRequestID(cmd.Context(), "")
			path := args[0]

			a, err := buildApp(ctx, opts.cfg, opts.log)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := afero.ReadFile(a.fs, path)
			if err != nil {
				return fmt.Errorf("read recording: %w", err)
			}

			filename := filepath.Base(path)
			res, err := a.pipeline.Run(ctx, data, filename)
			if err != nil {
				return err
			}

			if writeReport {
				ext := filepath.Ext(filename)
				if _, err := a.reports.Write(ctx, report.Report{
					Title:       filename[:len(filename)-len(ext)],
					SourceFile:  filename,
					CreatedAt:   time.Now().UTC(),
					Transcript:  res.Transcript,
					Summary:     res.Summary,
					ActionItems: res.ActionItems,
				}); err != nil {
					return err
				}
			}

			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&writeReport, "report", false, "also write docx/json reports to the output folder")
	return cmd
}
