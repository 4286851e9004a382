package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestPrintfWritesToOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)

	l.Printf("hello %s\n", "world")

	if got := buf.String(); got != "hello world\n" {
		t.Errorf("Printf() wrote %q, want %q", got, "hello world\n")
	}
}

func TestQuietSuppressesOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, true)

	l.Printf("hidden\n")
	l.Println("also hidden")

	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q, want nothing", buf.String())
	}
}

func TestWarnfIgnoresQuiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, true)

	l.Warnf("disk full: %s", "/tmp")

	want := "Warning: disk full: /tmp\n"
	if got := buf.String(); got != want {
		t.Errorf("Warnf() wrote %q, want %q", got, want)
	}
}

func TestCommandOnlyInVerbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Command("git", "status", "--porcelain")
	if buf.Len() != 0 {
		t.Errorf("non-verbose logger wrote %q", buf.String())
	}

	buf.Reset()
	l = New(&buf, true, false)
	l.Command("git", "status", "--porcelain")
	if got := buf.String(); !strings.HasPrefix(got, "$ git status") {
		t.Errorf("verbose Command() wrote %q", got)
	}
}

func TestFromContextReturnsNoopWithoutLogger(t *testing.T) {
	t.Parallel()

	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext() returned nil")
	}
	// Must not panic.
	l.Printf("discarded")
}

func TestFromContextRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	ctx := WithLogger(context.Background(), l)

	if got := FromContext(ctx); got != l {
		t.Error("FromContext() did not return the attached logger")
	}
}
