package document

import (
	"regexp"
	"strings"
)

// Precompiled line classifiers. Markers are recognized at column 0 only.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// ATX heading: 1-6 '#' then at least one space
	headingLine = regexp.MustCompile(`^(#{1,6}) +(.*)$`)

	// Unordered item: '-' with an optional space, or '*'/'+' with a
	// required space, then text
	bulletLine = regexp.MustCompile(`^(?:- ?|[*+] )(.*)$`)

	// Ordered item: integer, '.', a space, then text
	orderedLine = regexp.MustCompile(`^[0-9]+\. +(.*)$`)
)

// fenceMarker opens and closes verbatim code regions.
const fenceMarker = "```"

// accumulator kinds for the in-progress block.
type accKind int

const (
	accNone accKind = iota
	accParagraph
	accUnordered
	accOrdered
	accCode
)

// parser holds the single open accumulator and the emitted blocks.
type parser struct {
	blocks []Block
	kind   accKind
	lines  []string // paragraph lines or verbatim code lines
	items  []string // list items
	lang   string   // language token of the open fence
}

// Parse converts source into an ordered block sequence in a single forward
// pass over its lines. It is total: any input, including empty text,
// malformed fences, or control characters, yields a (possibly empty)
// sequence. An unterminated fence is closed implicitly at end of input so no
// trailing content is lost.
func Parse(source string) []Block {
	p := &parser{}
	lines := strings.Split(crlfOrCR.ReplaceAllString(source, "\n"), "\n")

	for _, line := range lines {
		p.consume(line)
	}
	p.flush()

	return p.blocks
}

// consume classifies one line and advances the accumulator.
func (p *parser) consume(line string) {
	// Fence content is never re-classified.
	if p.kind == accCode {
		if strings.HasPrefix(line, fenceMarker) {
			p.flush()
			return
		}
		p.lines = append(p.lines, line)
		return
	}

	if strings.HasPrefix(line, fenceMarker) {
		p.flush()
		p.kind = accCode
		p.lang = strings.TrimSpace(line[len(fenceMarker):])
		return
	}

	if strings.TrimSpace(line) == "" {
		p.flush()
		return
	}

	if m := headingLine.FindStringSubmatch(line); m != nil {
		p.flush()
		p.blocks = append(p.blocks, Heading{Level: len(m[1]), Text: strings.TrimSpace(m[2])})
		return
	}

	if m := bulletLine.FindStringSubmatch(line); m != nil {
		if p.kind != accUnordered {
			p.flush()
			p.kind = accUnordered
		}
		p.items = append(p.items, strings.TrimSpace(m[1]))
		return
	}

	if m := orderedLine.FindStringSubmatch(line); m != nil {
		if p.kind != accOrdered {
			p.flush()
			p.kind = accOrdered
		}
		p.items = append(p.items, strings.TrimSpace(m[1]))
		return
	}

	if p.kind != accParagraph {
		p.flush()
		p.kind = accParagraph
	}
	p.lines = append(p.lines, strings.TrimSpace(line))
}

// flush finalizes the open accumulator into an emitted block and clears it.
// Lists are emitted only when non-empty; a closed fence always emits, even
// with zero content lines, to mark that the fence region existed.
func (p *parser) flush() {
	switch p.kind {
	case accParagraph:
		text := strings.TrimSpace(strings.Join(p.lines, " "))
		if text != "" {
			p.blocks = append(p.blocks, Paragraph{Text: text})
		}
	case accUnordered:
		if len(p.items) > 0 {
			p.blocks = append(p.blocks, UnorderedList{Items: p.items})
		}
	case accOrdered:
		if len(p.items) > 0 {
			p.blocks = append(p.blocks, OrderedList{Items: p.items})
		}
	case accCode:
		p.blocks = append(p.blocks, CodeBlock{
			Language: p.lang,
			Code:     strings.Join(p.lines, "\n"),
		})
	}

	p.kind = accNone
	p.lines = nil
	p.items = nil
	p.lang = ""
}
