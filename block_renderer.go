package helpdoc

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"

	"github.com/vksvicky/Coreveo-sub001/document"
	"github.com/vksvicky/Coreveo-sub001/style"
)

// BlockRenderer renders markdown to terminal text by walking the parsed
// block model directly instead of going through a markdown engine. Code
// blocks are highlighted with chroma; other blocks are styled with lipgloss.
// Create with NewBlockRenderer.
type BlockRenderer struct {
	cfg       style.Config
	heading   lipgloss.Style
	accent    lipgloss.Style
	paragraph lipgloss.Style
}

// NewBlockRenderer creates a BlockRenderer with the given style
// configuration.
func NewBlockRenderer(cfg style.Config) (*BlockRenderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	paragraph := lipgloss.NewStyle()
	if cfg.WordWrap > 0 {
		paragraph = paragraph.Width(cfg.WordWrap)
	}

	return &BlockRenderer{
		cfg:       cfg,
		heading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.Accent)),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Accent)),
		paragraph: paragraph,
	}, nil
}

// Render parses markdown into blocks and lays them out one by one, blocks
// separated by blank lines. base is accepted for interface compatibility;
// the block model carries no link nodes, so there is nothing to resolve.
// Invalid UTF-8 comes back verbatim as unstyled text of the same length.
func (r *BlockRenderer) Render(markdown string, base *url.URL) StyledText {
	if !utf8.ValidString(markdown) {
		return Unstyled(markdown)
	}

	blocks := document.Parse(markdown)

	var styled, plain []string
	for _, b := range blocks {
		s, p := r.renderBlock(b)
		styled = append(styled, s)
		plain = append(plain, p)
	}

	return Styled(strings.Join(styled, "\n\n"), strings.Join(plain, "\n\n"))
}

// renderBlock returns the styled and plain renditions of one block.
func (r *BlockRenderer) renderBlock(b document.Block) (string, string) {
	switch v := b.(type) {
	case document.Heading:
		marker := strings.Repeat("#", v.Level) + " "
		return r.heading.Render(marker + v.Text), marker + v.Text

	case document.Paragraph:
		return r.paragraph.Render(v.Text), v.Text

	case document.UnorderedList:
		var styled, plain []string
		for _, item := range v.Items {
			styled = append(styled, r.accent.Render("•")+" "+item)
			plain = append(plain, "• "+item)
		}
		return strings.Join(styled, "\n"), strings.Join(plain, "\n")

	case document.OrderedList:
		var styled, plain []string
		for i, item := range v.Items {
			marker := fmt.Sprintf("%d.", i+1)
			styled = append(styled, r.accent.Render(marker)+" "+item)
			plain = append(plain, marker+" "+item)
		}
		return strings.Join(styled, "\n"), strings.Join(plain, "\n")

	case document.CodeBlock:
		return r.renderCode(v), v.Code
	}

	// Unreachable while the block set stays closed.
	return "", ""
}

// renderCode highlights a code block with chroma, falling back to the
// verbatim code on any highlighting error or unknown language.
func (r *BlockRenderer) renderCode(cb document.CodeBlock) string {
	var buf strings.Builder
	if err := quick.Highlight(&buf, cb.Code, cb.Language, "terminal256", r.cfg.CodeStyle); err != nil {
		return cb.Code
	}
	return buf.String()
}
