package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/link"
	"github.com/raphi011/gitlink/internal/log"
	"github.com/raphi011/gitlink/internal/output"
)

func newCopyCmd() *cobra.Command {
	var flags linkFlags

	cmd := &cobra.Command{
		Use:     "copy [path[:line[-end]]]",
		Short:   "Copy the provider link of a file to the clipboard",
		Aliases: []string{"cp", "copy-provider-link"},
		GroupID: GroupLink,
		Args:    cobra.MaximumNArgs(1),
		Long: `Copy the provider link of a file to the clipboard.

Targets are resolved like for open. When stdout is not a terminal the link
is printed as well, so "gitlink copy | ..." keeps working.`,
		Example: `  gitlink copy main.go:42
  gitlink copy --file main.go --line 3 --end-line 9`,
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

			if err := copyToClipboard(l.URL); err != nil {
				return err
			}
			log.FromContext(ctx).Printf("Copied %s\n", l.URL)

			if !out.IsTerminal() {
				out.Println(l.URL)
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func copyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard available (install xclip, xsel or wl-clipboard)")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
