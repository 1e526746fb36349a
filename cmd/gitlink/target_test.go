package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/link"
)

func TestParseTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		arg     string
		want    target
		wantErr bool
	}{
		{name: "empty", arg: "", want: target{}},
		{name: "path only", arg: "missing/main.go", want: target{path: "missing/main.go"}},
		{name: "line", arg: "missing/main.go:12", want: target{path: "missing/main.go", lineStart: 12}},
		{
			name: "range",
			arg:  "missing/main.go:12-20",
			want: target{path: "missing/main.go", lineStart: 12, lineEnd: 20, selection: true},
		},
		{
			name: "reversed range kept for link normalization",
			arg:  "missing/main.go:20-12",
			want: target{path: "missing/main.go", lineStart: 20, lineEnd: 12, selection: true},
		},
		{name: "colon without number", arg: "missing/a:b", want: target{path: "missing/a:b"}},
		{name: "line zero", arg: "missing/main.go:0", wantErr: true},
		{name: "end zero", arg: "missing/main.go:3-0", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseTarget(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTarget(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseTarget(%q) = %+v, want %+v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestParseTarget_ExistingPathWithColon(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes:12")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := parseTarget(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != (target{path: path}) {
		t.Errorf("parseTarget() = %+v, want literal path", got)
	}
}

func TestLinkFlagsRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flags   []string
		args    []string
		want    link.Request
		wantErr bool
	}{
		{
			name: "no target",
			want: link.Request{},
		},
		{
			name: "positional line is a cursor",
			args: []string{"missing/a.go:4"},
			want: link.Request{Path: "missing/a.go", LineStart: 4},
		},
		{
			name:  "editor file overrides positional",
			flags: []string{"--file", "missing/b.go", "--line", "7"},
			args:  []string{"missing/a.go:4"},
			want:  link.Request{Path: "missing/b.go", LineStart: 7},
		},
		{
			name:  "editor line overrides positional line",
			flags: []string{"--line", "9"},
			args:  []string{"missing/a.go:4-5"},
			want:  link.Request{Path: "missing/a.go", LineStart: 9},
		},
		{
			name:  "end line marks selection",
			flags: []string{"--file", "missing/b.go", "--line", "7", "--end-line", "7"},
			want:  link.Request{Path: "missing/b.go", LineStart: 7, LineEnd: 7, Selection: true},
		},
		{
			name:  "link options",
			flags: []string{"--remote", "upstream", "--sha", "--default-branch"},
			want:  link.Request{Remote: "upstream", UseCommitSHA: true, DefaultBranch: true},
		},
		{
			name:    "end line without line",
			flags:   []string{"--end-line", "3"},
			wantErr: true,
		},
		{
			name:    "line zero",
			flags:   []string{"--line", "0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var f linkFlags
			cmd := &cobra.Command{Use: "test"}
			f.register(cmd)
			if err := cmd.ParseFlags(tt.flags); err != nil {
				t.Fatalf("ParseFlags() error = %v", err)
			}

			got, err := f.request(cmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("request() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("request() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
