package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCapture runs the CLI with captured output.
func runCapture(t *testing.T, args []string, stdin string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errBuf bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCapture(t, []string{"--version"}, "")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "helpdoc") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCapture(t, []string{"--help"}, "")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "Usage: helpdoc") {
		t.Errorf("stdout missing usage:\n%s", stdout)
	}
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCapture(t, []string{"--list"}, "")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	for _, topic := range []string{"getting-started", "sensors", "shortcuts", "permissions"} {
		if !strings.Contains(stdout, topic) {
			t.Errorf("list output missing %q:\n%s", topic, stdout)
		}
	}
}

func TestRun_RenderTopicPlain(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCapture(t, []string{"--topic", "shortcuts", "--plain"}, "")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "Keyboard Shortcuts") {
		t.Errorf("stdout missing topic content:\n%s", stdout)
	}
}

func TestRun_UnknownTopic(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCapture(t, []string{"--topic", "nope"}, "")
	if code != ExitUsage {
		t.Fatalf("exit = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "topic not found") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_NoInput(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCapture(t, nil, "")
	if code != ExitUsage {
		t.Fatalf("exit = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "no input") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_StdinHTML(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCapture(t, []string{"--format", "html", "-"}, "# From Stdin\n")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "<h1") || !strings.Contains(stdout, "From Stdin") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_FileOutline(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	content := "# Title\n\npara text\n\n- a\n- b\n1. c\n\n```go\nx\ny\n```\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	code, stdout, _ := runCapture(t, []string{"--format", "outline", path}, "")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}

	for _, want := range []string{"h1    Title", "p     para text", "ul    2 items", "ol    1 items", "code  go, 2 lines"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("outline missing %q:\n%s", want, stdout)
		}
	}
}

func TestRun_TopicsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "local.md"), []byte("# Local Topic\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	code, stdout, _ := runCapture(t, []string{"--topics-dir", dir, "--topic", "local", "--plain"}, "")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "Local Topic") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_InitStyle(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCapture(t, []string{"--init-style"}, "")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	for _, want := range []string{"theme:", "word_wrap:", "code_style:"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("init-style output missing %q:\n%s", want, stdout)
		}
	}
}

func TestRun_InvalidStyleFlag(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCapture(t, []string{"--theme", "bogus", "--topic", "sensors"}, "")
	if code != ExitUsage {
		t.Fatalf("exit = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "invalid theme") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_StyleFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte("theme: notty\nword_wrap: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	code, stdout, _ := runCapture(t, []string{"--style", path, "--topic", "permissions", "--plain"}, "")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "Permissions") {
		t.Errorf("stdout = %q", stdout)
	}
}
