package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/link"
	"github.com/raphi011/gitlink/internal/output"
)

func newURLCmd() *cobra.Command {
	var (
		flags      linkFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "url [path[:line[-end]]]",
		Short:   "Print the provider link of a file",
		GroupID: GroupLink,
		Args:    cobra.MaximumNArgs(1),
		Example: `  gitlink url main.go:42
  gitlink url --json | jq -r .commit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			req, err := flags.request(cmd, args)
			if err != nil {
				return err
			}

			l, err := link.Build(ctx, req)
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.JSON(l)
			}
			out.Println(l.URL)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the link and what it was built from as JSON")

	return cmd
}
