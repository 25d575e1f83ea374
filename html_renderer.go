package helpdoc

import (
	"bytes"
	"html"
	"net/url"
	"unicode/utf8"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/vksvicky/Coreveo-sub001/style"
)

// HTMLRenderer renders markdown to an HTML fragment using goldmark, with
// chroma class-based syntax highlighting for fenced code. Create with
// NewHTMLRenderer.
type HTMLRenderer struct {
	cfg style.Config
}

// NewHTMLRenderer creates an HTMLRenderer with the given style configuration.
func NewHTMLRenderer(cfg style.Config) (*HTMLRenderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &HTMLRenderer{cfg: cfg}, nil
}

// Render converts markdown to an HTML fragment. The plain projection is the
// fragment's text content with tags stripped. Input goldmark rejects,
// including invalid UTF-8, comes back verbatim as unstyled text of the same
// length.
//
// The engine is built per call: goldmark.Markdown instances are stateless
// per Convert but the AST transformer carries the per-call base URL.
func (r *HTMLRenderer) Render(markdown string, base *url.URL) StyledText {
	if !utf8.ValidString(markdown) {
		return Unstyled(markdown)
	}

	engine := goldmark.New(
		goldmark.WithExtensions(
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // style via external stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(&linkResolver{base: base}, 100),
			),
		),
		goldmark.WithRendererOptions(
			ghtml.WithXHTML(),
			// Note: WithUnsafe() intentionally NOT used; help text may
			// come from user-overridden topic files.
		),
	)

	var buf bytes.Buffer
	if err := engine.Convert([]byte(markdown), &buf); err != nil {
		return Unstyled(markdown)
	}

	out := buf.String()
	plain := html.UnescapeString(bluemonday.StrictPolicy().Sanitize(out))

	return Styled(out, plain)
}

// linkResolver absolutizes relative link and image destinations against a
// base URL. A nil base leaves the document untouched.
type linkResolver struct {
	base *url.URL
}

// Transform implements parser.ASTTransformer.
func (t *linkResolver) Transform(doc *gast.Document, reader text.Reader, pc parser.Context) {
	if t.base == nil {
		return
	}
	_ = gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *gast.Link:
			v.Destination = t.resolve(v.Destination)
		case *gast.Image:
			v.Destination = t.resolve(v.Destination)
		}
		return gast.WalkContinue, nil
	})
}

func (t *linkResolver) resolve(dest []byte) []byte {
	ref, err := url.Parse(string(dest))
	if err != nil || ref.IsAbs() {
		return dest
	}
	return []byte(t.base.ResolveReference(ref).String())
}
