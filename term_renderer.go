package helpdoc

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/vksvicky/Coreveo-sub001/style"
)

// TermRenderer renders markdown to ANSI-styled terminal text using glamour.
// The zero value is not usable; create with NewTermRenderer.
type TermRenderer struct {
	cfg style.Config
}

// NewTermRenderer creates a TermRenderer with the given style configuration.
// Returns an error only for an invalid configuration; rendering itself
// never fails.
func NewTermRenderer(cfg style.Config) (*TermRenderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Theme names validate case-insensitively, but glamour's standard
	// style lookup is case-sensitive; store the normalized form.
	cfg.Theme = strings.ToLower(cfg.Theme)
	return &TermRenderer{cfg: cfg}, nil
}

// Render converts markdown to styled terminal output. Input the underlying
// engine rejects, including invalid UTF-8, comes back verbatim as unstyled
// text of the same length.
//
// A glamour term renderer is not safe for concurrent use, so a fresh one is
// built per call from the immutable configuration. That keeps Render free
// of locks and shared state.
func (r *TermRenderer) Render(markdown string, base *url.URL) StyledText {
	if !utf8.ValidString(markdown) {
		return Unstyled(markdown)
	}

	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle(r.cfg.Theme),
		glamour.WithWordWrap(r.cfg.WordWrap),
	}
	if base != nil {
		opts = append(opts, glamour.WithBaseURL(base.String()))
	}

	engine, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return Unstyled(markdown)
	}

	out, err := engine.Render(markdown)
	if err != nil {
		return Unstyled(markdown)
	}

	return Styled(out, ansi.Strip(out))
}
