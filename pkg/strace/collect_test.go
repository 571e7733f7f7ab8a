package strace

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

// sh -c <script> stands in for the tracer, the script is the traced command
func shCollector(t *testing.T) *Collector {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	return &Collector{Tracer: "sh"}
}

func TestCollect(t *testing.T) {
	c := shCollector(t)

	out, err := c.Collect([]string{"-c", "echo 'openat(AT_FDCWD) = 3' >&2; echo stdout"})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if out != "openat(AT_FDCWD) = 3\n" {
		t.Errorf("Collect = %q; expected the stderr record only", out)
	}
}

func TestCollect_Stdout(t *testing.T) {
	c := shCollector(t)
	var stdout bytes.Buffer
	c.Stdout = &stdout

	if _, err := c.Collect([]string{"-c", "echo hello"}); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if stdout.String() != "hello\n" {
		t.Errorf("Stdout = %q; expected %q", stdout.String(), "hello\n")
	}
}

func TestCollect_NonzeroExit(t *testing.T) {
	c := shCollector(t)

	out, err := c.Collect([]string{"-c", "echo 'read(3) = 0' >&2; exit 3"})
	if err != nil {
		t.Fatalf("Collect with nonzero exit status failed: %v", err)
	}
	if !strings.Contains(out, "read(3)") {
		t.Errorf("Collect = %q; expected partial trace", out)
	}
}

func TestCollect_Empty(t *testing.T) {
	c := shCollector(t)

	out, err := c.Collect([]string{"-c", "true"})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if out != "" {
		t.Errorf("Collect = %q; expected empty output", out)
	}
}

func TestCollect_Flags(t *testing.T) {
	c := shCollector(t)
	c.Flags = []string{"-c", "echo \"$0 $1\" >&2"}

	out, err := c.Collect([]string{"ls", "-la"})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if out != "ls -la\n" {
		t.Errorf("Collect = %q; expected arguments forwarded verbatim", out)
	}
}

func TestCollect_TracerUnavailable(t *testing.T) {
	c := Collector{Tracer: "syscallgap-no-such-tracer"}

	out, err := c.Collect([]string{"ls"})
	if !errors.Is(err, ErrTracerUnavailable) {
		t.Errorf("Collect error = %v; expected ErrTracerUnavailable", err)
	}
	if out != "" {
		t.Errorf("Collect = %q; expected empty output", out)
	}
}
