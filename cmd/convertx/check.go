package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/convertx/internal/metadata"
	"github.com/Its-donkey/convertx/logging"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "check <base-url>",
		Short: "Audit the page metadata of a running site",
		Long:  "Fetches every route of the site at base-url and reports missing or inconsistent titles, descriptions, canonical links and preview tags.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Site.Name, logging.WARN, cmd.ErrOrStderr())
			svc := metadata.NewService(&http.Client{Timeout: timeout}, logger)

			reports, err := svc.Check(cmd.Context(), args[0], cfg.Site.Name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, rep := range reports {
				switch {
				case rep.Err != nil:
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", rep.Route.Path, rep.Err)
				case !rep.OK():
					failed++
					for _, p := range rep.Problems {
						fmt.Fprintf(out, "FAIL %s: %s\n", rep.Route.Path, p)
					}
				default:
					fmt.Fprintf(out, "ok   %s\n", rep.Route.Path)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d routes failed the metadata check", failed, len(reports))
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	return cmd
}
