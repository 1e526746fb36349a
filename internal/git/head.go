package git

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBranch is used when HEAD does not name a branch.
const DefaultBranch = "master"

// maxSymrefDepth bounds symbolic ref chains.
const maxSymrefDepth = 5

// Head is the parsed content of HEAD.
type Head struct {
	Branch   string // empty when detached
	Commit   string // empty when the branch ref could not be read
	Detached bool
}

// ReadHead reads HEAD from the per-checkout git directory and resolves the
// commit it points at from loose or packed refs.
func ReadHead(repo *Repository) (Head, error) {
	content, err := os.ReadFile(filepath.Join(repo.GitDir, "HEAD"))
	if err != nil {
		return Head{}, fmt.Errorf("failed to read HEAD: %w", err)
	}

	line := strings.TrimSpace(string(content))
	ref, ok := strings.CutPrefix(line, "ref:")
	if !ok {
		if !isHash(line) {
			return Head{}, fmt.Errorf("invalid HEAD content %q", line)
		}
		return Head{Commit: line, Detached: true}, nil
	}

	ref = strings.TrimSpace(ref)
	head := Head{Branch: strings.TrimPrefix(ref, "refs/heads/")}
	if commit, err := resolveRef(repo, ref); err == nil {
		head.Commit = commit
	}
	return head, nil
}

// resolveRef returns the commit a ref points at, following symbolic refs.
func resolveRef(repo *Repository, ref string) (string, error) {
	for i := 0; i < maxSymrefDepth; i++ {
		value, err := readRef(repo, ref)
		if err != nil {
			return "", err
		}
		target, ok := strings.CutPrefix(value, "ref:")
		if !ok {
			return value, nil
		}
		ref = strings.TrimSpace(target)
	}
	return "", fmt.Errorf("symbolic ref chain too deep at %s", ref)
}

var errRefNotFound = errors.New("ref not found")

// readRef returns the raw content of a ref: a hash or "ref: <target>".
func readRef(repo *Repository, ref string) (string, error) {
	for _, dir := range []string{repo.GitDir, repo.CommonDir} {
		content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(ref)))
		if err == nil {
			return strings.TrimSpace(string(content)), nil
		}
	}

	if hash, ok := lookupPackedRef(repo.CommonDir, ref); ok {
		return hash, nil
	}
	return "", fmt.Errorf("%w: %s", errRefNotFound, ref)
}

// lookupPackedRef searches <dir>/packed-refs for ref.
func lookupPackedRef(dir, ref string) (string, bool) {
	f, err := os.Open(filepath.Join(dir, "packed-refs"))
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		// "# pack-refs with: ..." header and "^<hash>" peeled tag lines
		if line == "" || line[0] == '#' || line[0] == '^' {
			continue
		}
		hash, name, ok := strings.Cut(line, " ")
		if ok && name == ref {
			return hash, true
		}
	}
	return "", false
}

// RemoteDefaultBranch returns the default branch of remote as recorded by
// clone or "git remote set-head". Falls back to an existing main or master
// remote-tracking ref, then to "".
func RemoteDefaultBranch(repo *Repository, remote string) string {
	prefix := "refs/remotes/" + remote + "/"

	if value, err := readRef(repo, prefix+"HEAD"); err == nil {
		if target, ok := strings.CutPrefix(value, "ref:"); ok {
			return strings.TrimPrefix(strings.TrimSpace(target), prefix)
		}
	}

	for _, candidate := range []string{"main", "master"} {
		if _, err := readRef(repo, prefix+candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func isHash(s string) bool {
	// SHA-1 (40) or SHA-256 (64) object names
	if len(s) != 40 && len(s) != 64 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
