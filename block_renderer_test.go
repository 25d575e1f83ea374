package helpdoc

import (
	"strings"
	"testing"

	"github.com/vksvicky/Coreveo-sub001/style"
)

func TestNewBlockRenderer_InvalidStyle(t *testing.T) {
	t.Parallel()

	cfg := style.Default()
	cfg.WordWrap = -5

	if _, err := NewBlockRenderer(cfg); err == nil {
		t.Error("NewBlockRenderer(invalid) = nil, want error")
	}
}

func TestBlockRenderer_Render(t *testing.T) {
	t.Parallel()

	r, err := NewBlockRenderer(style.Default())
	if err != nil {
		t.Fatalf("NewBlockRenderer() error = %v", err)
	}

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{
			name:         "heading keeps its marker",
			input:        "## Reading states",
			wantContains: []string{"## Reading states"},
		},
		{
			name:         "unordered list gets bullets",
			input:        "- first\n- second",
			wantContains: []string{"• first", "• second"},
		},
		{
			name:         "ordered list renumbered by position",
			input:        "4. first\n9. second",
			wantContains: []string{"1. first", "2. second"},
		},
		{
			name:         "paragraph lines joined",
			input:        "line one\nline two",
			wantContains: []string{"line one line two"},
		},
		{
			name:         "code block content survives",
			input:        "```\ndefaults write io.coreveo.app\n```",
			wantContains: []string{"defaults write io.coreveo.app"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := r.Render(tt.input, nil)
			if !out.Styled() {
				t.Fatalf("Render(%q) took the fallback path", tt.input)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(out.Plain(), want) {
					t.Errorf("Plain() missing %q:\n%s", want, out.Plain())
				}
			}
		})
	}
}

func TestBlockRenderer_BlocksSeparatedByBlankLines(t *testing.T) {
	t.Parallel()

	r, err := NewBlockRenderer(style.Default())
	if err != nil {
		t.Fatal(err)
	}

	out := r.Render("# Title\n\npara\n\n- item", nil)
	if got := strings.Count(out.Plain(), "\n\n"); got != 2 {
		t.Errorf("Plain() has %d block separators, want 2:\n%q", got, out.Plain())
	}
}

func TestBlockRenderer_FallbackOnInvalidUTF8(t *testing.T) {
	t.Parallel()

	r, err := NewBlockRenderer(style.Default())
	if err != nil {
		t.Fatal(err)
	}

	input := "help " + string([]byte{0xc3, 0x28})
	out := r.Render(input, nil)

	if out.Styled() {
		t.Fatal("Render(invalid UTF-8) did not fall back")
	}
	if out.Plain() != input {
		t.Errorf("fallback modified input: %q != %q", out.Plain(), input)
	}
}

func TestBlockRenderer_Idempotent(t *testing.T) {
	t.Parallel()

	r, err := NewBlockRenderer(style.Default())
	if err != nil {
		t.Fatal(err)
	}

	input := "# Title\n\n```go\nfunc main() {}\n```"
	if first, second := r.Render(input, nil), r.Render(input, nil); first != second {
		t.Errorf("Render is not idempotent:\nfirst:  %q\nsecond: %q", first.String(), second.String())
	}
}
