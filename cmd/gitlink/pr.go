package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/link"
	"github.com/raphi011/gitlink/internal/log"
)

func newPRCmd() *cobra.Command {
	var (
		flags   linkFlags
		copyURL bool
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:     "pr [path]",
		Short:   "Open the pull request page for the current branch",
		Aliases: []string{"open-pull-request"},
		GroupID: GroupLink,
		Args:    cobra.MaximumNArgs(1),
		Long: `Open the page that starts a pull request from the current branch.

Supported on GitHub and Bitbucket. Bitbucket pull requests target
default_pull_request_branch (default "integration").`,
		Example: `  gitlink pr            # Open in browser
  gitlink pr --copy     # Copy to clipboard
  gitlink pr -n         # Print only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req, err := flags.request(cmd, args)
			if err != nil {
				return err
			}
			req.PullRequest = true

			l, err := link.Build(ctx, req)
			if err != nil {
				return err
			}

			if copyURL && !dryRun {
				if err := copyToClipboard(l.URL); err != nil {
					return err
				}
				log.FromContext(ctx).Printf("Copied %s\n", l.URL)
				return nil
			}
			return openLink(ctx, l, dryRun)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&copyURL, "copy", "c", false, "Copy the URL instead of opening it")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the URL instead of opening it")

	return cmd
}
