package launch

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCommand(t *testing.T) {
	t.Parallel()

	const url = "https://github.com/o/r/blob/main/a.go#L1"

	tests := []struct {
		name        string
		openCommand string
		goos        string
		wantName    string
		wantArgs    []string
	}{
		{name: "darwin", goos: "darwin", wantName: "open", wantArgs: []string{url}},
		{name: "linux", goos: "linux", wantName: "xdg-open", wantArgs: []string{url}},
		{name: "freebsd", goos: "freebsd", wantName: "xdg-open", wantArgs: []string{url}},
		{
			name:     "windows",
			goos:     "windows",
			wantName: "rundll32",
			wantArgs: []string{"url.dll,FileProtocolHandler", url},
		},
		{
			name:        "custom command",
			openCommand: "firefox --new-tab {url}",
			goos:        "linux",
			wantName:    "sh",
			wantArgs:    []string{"-c", "firefox --new-tab '" + url + "'"},
		},
		{
			name:        "custom command without placeholder",
			openCommand: "firefox",
			goos:        "darwin",
			wantName:    "sh",
			wantArgs:    []string{"-c", "firefox '" + url + "'"},
		},
		{
			name:        "custom command on windows",
			openCommand: "start chrome {url}",
			goos:        "windows",
			wantName:    "cmd",
			wantArgs:    []string{"/C", `start chrome "` + url + `"`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, args := Command(url, tt.openCommand, tt.goos)
			if name != tt.wantName {
				t.Errorf("Command() name = %q, want %q", name, tt.wantName)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("Command() args = %q, want %q", args, tt.wantArgs)
			}
		})
	}
}

func TestSubstituteURL_Quoting(t *testing.T) {
	t.Parallel()

	got := SubstituteURL("echo {url} {url}", "https://x/it's", "linux")
	want := `echo 'https://x/it'\''s' 'https://x/it'\''s'`
	if got != want {
		t.Errorf("SubstituteURL() = %q, want %q", got, want)
	}
}

func TestProgram(t *testing.T) {
	t.Parallel()

	if got := program("  firefox --new-tab {url}", "linux"); got != "firefox" {
		t.Errorf("program() = %q, want firefox", got)
	}
	if got := program("", "darwin"); got != "open" {
		t.Errorf("program() = %q, want open", got)
	}
}

func TestOpen_CustomCommand(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out := filepath.Join(t.TempDir(), "opened")
	url := "https://github.com/o/r/blob/main/my%20file.txt#L3"

	if err := Open(context.Background(), url, "printf %s {url} > "+out); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != url {
		t.Errorf("opened %q, want %q", data, url)
	}
}

func TestOpen_Failure(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	if err := Open(context.Background(), "https://x", "exit 3"); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpen_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Open(ctx, "https://x", "true")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Open() error = %v, want context.Canceled", err)
	}
}
