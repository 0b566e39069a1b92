package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/convertx/logging"
)

type logsOptions struct {
	dir      string
	lines    int
	category string
}

func newLogsCmd(root *rootOptions) *cobra.Command {
	opts := &logsOptions{}
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the most recent server log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := opts.dir
			if dir == "" {
				cfg, err := root.load()
				if err != nil {
					return err
				}
				dir = cfg.App.Logs
			}
			if strings.TrimSpace(dir) == "" {
				return errors.New("no log directory configured; set app.logs or pass --dir")
			}

			entries, err := logging.ReadRecent(filepath.Join(dir, logFilename), opts.lines)
			if err != nil {
				return fmt.Errorf("read logs: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				if opts.category != "" && e.Category != opts.category {
					continue
				}
				line := fmt.Sprintf("%s %-5s [%s] %s", e.Timestamp.Format("2006-01-02T15:04:05Z07:00"), e.Level, e.Category, e.Message)
				if e.Error != "" {
					line += " error=" + e.Error
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.dir, "dir", "", "log directory, overriding app.logs")
	cmd.Flags().IntVarP(&opts.lines, "lines", "n", 50, "number of entries to read")
	cmd.Flags().StringVar(&opts.category, "category", "", "only print entries of this category (http, relay, forms, funnel)")
	return cmd
}
