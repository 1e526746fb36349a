package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/link"
)

// targetPattern matches "path:12" and "path:12-20".
var targetPattern = regexp.MustCompile(`^(.+):(\d+)(?:-(\d+))?$`)

// target is a path with an optional line range.
type target struct {
	path      string
	lineStart int
	lineEnd   int
	selection bool
}

// parseTarget splits "path[:line[-end]]". A path that exists as written is
// taken literally, even when it contains a colon. A range marks a selection.
func parseTarget(arg string) (target, error) {
	if arg == "" {
		return target{}, nil
	}
	if _, err := os.Stat(arg); err == nil {
		return target{path: arg}, nil
	}

	m := targetPattern.FindStringSubmatch(arg)
	if m == nil {
		return target{path: arg}, nil
	}

	t := target{path: m[1]}
	var err error
	if t.lineStart, err = parseLine(m[2]); err != nil {
		return target{}, fmt.Errorf("invalid target %q: %w", arg, err)
	}
	if m[3] != "" {
		if t.lineEnd, err = parseLine(m[3]); err != nil {
			return target{}, fmt.Errorf("invalid target %q: %w", arg, err)
		}
		t.selection = true
	}
	return t, nil
}

func parseLine(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("line numbers start at 1")
	}
	return n, nil
}

// linkFlags are shared by all link commands.
type linkFlags struct {
	file          string
	line          int
	endLine       int
	remote        string
	sha           bool
	defaultBranch bool
}

func (f *linkFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "file", "", "File to link (editor integration, overrides the target argument)")
	cmd.Flags().IntVar(&f.line, "line", 0, "First line of the cursor or selection (editor integration)")
	cmd.Flags().IntVar(&f.endLine, "end-line", 0, "Last line of the selection (editor integration)")
	cmd.Flags().StringVar(&f.remote, "remote", "", "Remote to link to instead of the tracked one")
	cmd.Flags().BoolVar(&f.sha, "sha", false, "Link to the current commit instead of the branch")
	cmd.Flags().BoolVar(&f.defaultBranch, "default-branch", false, "Link to the remote default branch")

	_ = cmd.MarkFlagFilename("file")
}

// request builds a link request. Editor flags win over the target argument.
func (f *linkFlags) request(cmd *cobra.Command, args []string) (link.Request, error) {
	var t target
	if len(args) > 0 {
		var err error
		if t, err = parseTarget(args[0]); err != nil {
			return link.Request{}, err
		}
	}

	if f.file != "" {
		t = target{path: f.file}
	}

	if cmd.Flags().Changed("end-line") && !cmd.Flags().Changed("line") {
		return link.Request{}, fmt.Errorf("--end-line requires --line")
	}
	if cmd.Flags().Changed("line") {
		if f.line < 1 || (cmd.Flags().Changed("end-line") && f.endLine < 1) {
			return link.Request{}, fmt.Errorf("line numbers start at 1")
		}
		t.lineStart = f.line
		t.lineEnd = f.endLine
		t.selection = cmd.Flags().Changed("end-line")
	}

	return link.Request{
		Path:          t.path,
		LineStart:     t.lineStart,
		LineEnd:       t.lineEnd,
		Selection:     t.selection,
		Remote:        f.remote,
		UseCommitSHA:  f.sha,
		DefaultBranch: f.defaultBranch,
	}, nil
}
