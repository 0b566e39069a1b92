package main

import (
	"github.com/spf13/cobra"

	"github.com/Its-donkey/convertx/internal/config"
)

const defaultConfigPath = "config.json"

// logFilename is the file the server writes inside the logs directory.
const logFilename = "convertx.log"

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "convertx",
		Short:         "ConvertX marketing site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath, "path to the JSON config file")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newRoutesCmd())
	cmd.AddCommand(newLogsCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	return cmd
}

func (o *rootOptions) load() (config.Config, error) {
	return config.Load(o.configPath)
}
