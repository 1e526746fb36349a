package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/raphi011/gitlink/internal/log"
)

func logCtx(buf *bytes.Buffer) context.Context {
	return log.WithLogger(context.Background(), log.New(buf, true, false))
}

func TestRunContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"success", []string{"-c", "exit 0"}, ""},
		{"failure without stderr", []string{"-c", "exit 3"}, "sh: exit status 3"},
		{"failure with stderr", []string{"-c", "echo 'no browser' >&2; exit 1"}, "no browser"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := RunContext(logCtx(&buf), "", "sh", tt.args...)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("RunContext() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("RunContext() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestRunContext_LogsCommand(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := RunContext(logCtx(&buf), "/tmp", "true"); err != nil {
		t.Fatalf("RunContext() = %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "[/tmp] $ true") {
		t.Errorf("logged %q, want command echo", got)
	}
}

func TestRunContext_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunContext(ctx, "", "sleep", "10")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunContext error = %v, want context.Canceled", err)
	}
}

func TestOutputContext(t *testing.T) {
	t.Parallel()

	t.Run("captures stdout", func(t *testing.T) {
		t.Parallel()
		out, err := OutputContext(context.Background(), "", "echo", "f9f2dcb")
		if err != nil {
			t.Fatalf("OutputContext() = %v", err)
		}
		if got := string(out); got != "f9f2dcb\n" {
			t.Errorf("OutputContext() = %q, want %q", got, "f9f2dcb\n")
		}
	})

	t.Run("runs in dir", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		out, err := OutputContext(context.Background(), dir, "pwd")
		if err != nil {
			t.Fatalf("OutputContext() = %v", err)
		}
		if got := strings.TrimSpace(string(out)); !strings.HasSuffix(got, dir[strings.LastIndex(dir, "/"):]) {
			t.Errorf("pwd = %q, want %q", got, dir)
		}
	})

	t.Run("stderr in error", func(t *testing.T) {
		t.Parallel()
		_, err := OutputContext(context.Background(), "", "sh", "-c", "echo 'fatal: not a git repository' >&2; exit 128")
		if err == nil || err.Error() != "fatal: not a git repository" {
			t.Errorf("OutputContext() error = %v", err)
		}
	})
}
