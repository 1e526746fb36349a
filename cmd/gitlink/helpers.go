package main

import (
	"context"

	"github.com/raphi011/gitlink/internal/config"
	"github.com/raphi011/gitlink/internal/launch"
	"github.com/raphi011/gitlink/internal/link"
	"github.com/raphi011/gitlink/internal/log"
	"github.com/raphi011/gitlink/internal/output"
)

// openLink opens l in the browser, or prints it when dryRun is set.
func openLink(ctx context.Context, l *link.Link, dryRun bool) error {
	if dryRun {
		output.FromContext(ctx).Println(l.URL)
		return nil
	}

	cfg, err := config.ResolverFromContext(ctx).ConfigForRepo(l.WorkTree)
	if err != nil {
		return err
	}
	if err := launch.Open(ctx, l.URL, cfg.OpenCommand); err != nil {
		return err
	}

	log.FromContext(ctx).Printf("Opened %s\n", l.URL)
	return nil
}
