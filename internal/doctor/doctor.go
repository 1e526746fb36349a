package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/raphi011/gitlink/internal/config"
	"github.com/raphi011/gitlink/internal/forge"
	"github.com/raphi011/gitlink/internal/git"
	"github.com/raphi011/gitlink/internal/launch"
	"github.com/raphi011/gitlink/internal/output"
)

// Options selects what to diagnose.
type Options struct {
	Dir        string // directory inside the repository
	ConfigPath string // global config file
}

// Diagnose runs all checks. It never fails; problems are recorded in the report.
func Diagnose(ctx context.Context, opts Options) *Report {
	r := &Report{}

	cfg := checkConfig(r, opts.ConfigPath)
	cfg = checkRepository(ctx, r, opts.Dir, cfg)
	checkEnvironment(r, cfg)

	return r
}

func checkConfig(r *Report, path string) *config.Config {
	cfg, err := config.LoadFile(path)
	switch {
	case err != nil:
		r.add(CategoryConfig, "config", StatusFail, err.Error())
	case !exists(path):
		r.add(CategoryConfig, "config", StatusOK, fmt.Sprintf("%s not found, using defaults", path))
	default:
		r.add(CategoryConfig, "config", StatusOK, fmt.Sprintf("loaded %s", path))
	}
	return &cfg
}

// checkRepository returns the effective config for the repository.
func checkRepository(ctx context.Context, r *Report, dir string, cfg *config.Config) *config.Config {
	repo, err := git.Locate(dir)
	if err != nil {
		r.add(CategoryRepository, "repository", StatusFail, err.Error())
		return cfg
	}
	r.add(CategoryRepository, "repository", StatusOK, repo.WorkTree)

	local, err := config.LoadLocal(repo.WorkTree)
	switch {
	case err != nil:
		r.add(CategoryRepository, "local config", StatusFail, err.Error())
	case local != nil:
		r.add(CategoryRepository, "local config", StatusOK, "loaded "+config.LocalConfigFileName)
		cfg = config.MergeLocal(cfg, local)
	}

	repoCfg, err := git.LoadConfig(repo.ConfigPath())
	if err != nil {
		r.add(CategoryRepository, "git config", StatusFail, err.Error())
		return cfg
	}

	state, err := git.ResolveState(ctx, repo, repoCfg, git.StateOptions{})
	if err != nil {
		r.add(CategoryRepository, "remote", StatusFail, err.Error())
		return cfg
	}
	r.add(CategoryRepository, "remote", StatusOK, fmt.Sprintf("%s %s (branch %s)", state.RemoteName, state.RemoteURL, state.Branch))

	if state.Commit == "" {
		r.add(CategoryRepository, "commit", StatusWarn, "HEAD commit could not be resolved")
	} else {
		r.add(CategoryRepository, "commit", StatusOK, state.Commit)
	}

	f, err := forge.Resolve(state.RemoteURL, state.Commit, cfg.ForgeOptions())
	if err != nil {
		r.add(CategoryRepository, "provider", StatusFail, err.Error())
		return cfg
	}

	url, err := f.WebURL(state.Branch, "", 0, 0)
	if err != nil {
		r.add(CategoryRepository, "provider", StatusWarn, fmt.Sprintf("%s: %v", f.Name(), err))
		return cfg
	}
	r.add(CategoryRepository, "provider", StatusOK, fmt.Sprintf("%s %s", f.Name(), url))
	return cfg
}

func checkEnvironment(r *Report, cfg *config.Config) {
	if err := git.CheckGit(); err != nil {
		r.add(CategoryEnvironment, "git", StatusWarn, "git not found, commits are read from refs only")
	} else {
		r.add(CategoryEnvironment, "git", StatusOK, "git is available")
	}

	if clipboard.Unsupported {
		r.add(CategoryEnvironment, "clipboard", StatusWarn, "no clipboard utility found (install xclip, xsel or wl-clipboard)")
	} else {
		r.add(CategoryEnvironment, "clipboard", StatusOK, "clipboard is available")
	}

	if path, err := launch.Opener(cfg.OpenCommand); err != nil {
		r.add(CategoryEnvironment, "browser", StatusWarn, fmt.Sprintf("opener not found: %v", err))
	} else {
		r.add(CategoryEnvironment, "browser", StatusOK, path)
	}
}

// Print writes the report grouped by category.
func Print(out *output.Printer, r *Report) {
	categoryNames := map[Category]string{
		CategoryConfig:      "Configuration",
		CategoryRepository:  "Repository",
		CategoryEnvironment: "Environment",
	}
	symbols := map[Status]string{
		StatusOK:   "✓",
		StatusWarn: "⚠",
		StatusFail: "❌",
	}

	for _, cat := range []Category{CategoryConfig, CategoryRepository, CategoryEnvironment} {
		printed := false
		for _, c := range r.Checks {
			if c.Category != cat {
				continue
			}
			if !printed {
				out.Printf("%s:\n", categoryNames[cat])
				printed = true
			}
			out.Printf("  %s %s: %s\n", symbols[c.Status], c.Name, c.Detail)
		}
		if printed {
			out.Println()
		}
	}

	if n := r.Count(StatusFail); n > 0 {
		out.Printf("Found %d issue(s)\n", n)
		return
	}
	out.Println("All checks passed")
}

// Run diagnoses, prints the report and returns an error if any check failed.
func Run(ctx context.Context, opts Options) error {
	r := Diagnose(ctx, opts)
	Print(output.FromContext(ctx), r)
	if n := r.Count(StatusFail); n > 0 {
		return fmt.Errorf("%d issues found", n)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
