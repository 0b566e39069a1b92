package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/convertx/internal/ui/server"
	"github.com/Its-donkey/convertx/logging"
)

type serveOptions struct {
	listen  string
	assets  string
	verbose bool
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if l := strings.TrimSpace(opts.listen); l != "" {
				cfg.Server.Addr, cfg.Server.Port = "", l
			}
			if opts.assets != "" {
				cfg.App.Assets = opts.assets
			}
			level := logging.ParseLevel(cfg.App.LogLevel)
			if opts.verbose {
				level = logging.DEBUG
			}

			writers := []io.Writer{os.Stdout}
			if dir := strings.TrimSpace(cfg.App.Logs); dir != "" {
				fw, err := logging.NewFileWriter(logging.FileOptions{Dir: dir, Filename: logFilename})
				if err != nil {
					return err
				}
				defer fw.Close()
				writers = append(writers, fw)
			}
			logger := logging.New(cfg.Site.Name, level, writers...)
			defer func() { _ = logger.Sync() }()

			err = server.Run(cmd.Context(), server.Options{Config: cfg, Logger: logger})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&opts.listen, "listen", "", "listen address, overriding the config (e.g. 127.0.0.1:4173)")
	cmd.Flags().StringVar(&opts.assets, "assets", "", "directory served in front of the embedded assets")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	return cmd
}
