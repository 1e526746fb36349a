package output

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := FromContext(WithPrinter(context.Background(), &buf))
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)
	p.Println("https://github.com/testUser/testRepo/tree/master")
	want := "https://github.com/testUser/testRepo/tree/master\n"
	if got := buf.String(); got != want {
		t.Errorf("Println() wrote %q, want %q", got, want)
	}
}

func TestPrinter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)
	err := p.JSON(struct {
		URL  string `json:"url"`
		Line int    `json:"line,omitempty"`
	}{URL: "https://example.com/a"})
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := "{\n  \"url\": \"https://example.com/a\"\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("JSON() wrote %q, want %q", got, want)
	}
}

func TestPrinter_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)
	err := p.YAML(map[string]string{"github_domain": "github.com"})
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	if got := buf.String(); !strings.Contains(got, "github_domain: github.com") {
		t.Errorf("YAML() wrote %q", got)
	}
}

func TestPrinter_IsTerminal(t *testing.T) {
	t.Parallel()

	if New(&bytes.Buffer{}).IsTerminal() {
		t.Error("IsTerminal() = true for a buffer")
	}
}
