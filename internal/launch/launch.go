// Package launch opens URLs with the system handler or a configured command.
package launch

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/raphi011/gitlink/internal/cmd"
)

// URLPlaceholder is replaced with the quoted URL in a custom open command.
const URLPlaceholder = "{url}"

// Open opens url in the browser. A non-empty openCommand is run through the
// shell with {url} replaced; without the placeholder the URL is appended.
func Open(ctx context.Context, url, openCommand string) error {
	name, args := Command(url, openCommand, runtime.GOOS)
	if err := cmd.RunContext(ctx, "", name, args...); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// Command returns the program and arguments that open url on goos.
func Command(url, openCommand, goos string) (string, []string) {
	if openCommand != "" {
		return shellCommand(SubstituteURL(openCommand, url, goos), goos)
	}

	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// SubstituteURL replaces {url} in command with the quoted url, or appends it
// when the placeholder is missing.
func SubstituteURL(command, url, goos string) string {
	quoted := quote(url, goos)
	if !strings.Contains(command, URLPlaceholder) {
		return command + " " + quoted
	}
	return strings.ReplaceAll(command, URLPlaceholder, quoted)
}

// Opener returns the path of the program Open would start.
// The error is non-nil when it is not on PATH.
func Opener(openCommand string) (string, error) {
	return exec.LookPath(program(openCommand, runtime.GOOS))
}

// program returns the configured program, not the shell running it.
func program(openCommand, goos string) string {
	if fields := strings.Fields(openCommand); len(fields) > 0 {
		return fields[0]
	}
	name, _ := Command("", "", goos)
	return name
}

func shellCommand(command, goos string) (string, []string) {
	if goos == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

// quote escapes s for the platform shell.
func quote(s, goos string) string {
	if goos == "windows" {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	// e.g., "it's" becomes 'it'\''s'
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
