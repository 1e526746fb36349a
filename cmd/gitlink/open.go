package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/link"
)

func newOpenCmd() *cobra.Command {
	var (
		flags  linkFlags
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "open [path[:line[-end]]]",
		Short:   "Open the provider page of a file in the browser",
		Aliases: []string{"browse", "open-in-provider"},
		GroupID: GroupLink,
		Args:    cobra.MaximumNArgs(1),
		Long: `Open the provider page of a file, a directory or the repository.

Without a target the current directory is used; the repository root opens
the repository page. A line anchors the cursor, a range anchors a selection.

The browser is started with open (macOS), xdg-open (Linux) or
rundll32 (Windows), or with open_command from the config.`,
		Example: `  gitlink open                          # Repository or directory page
  gitlink open main.go:42               # Line 42
  gitlink open main.go:42-50            # Lines 42 to 50
  gitlink open --file main.go --line 42 --end-line 50
  gitlink open --sha README.md          # Permalink to the current commit
  gitlink open --dry-run main.go        # Print instead of opening`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req, err := flags.request(cmd, args)
			if err != nil {
				return err
			}

			l, err := link.Build(ctx, req)
			if err != nil {
				return err
			}
			return openLink(ctx, l, dryRun)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the URL instead of opening it")

	return cmd
}
