// Package document parses raw help-text markdown into a structured block
// model.
//
// The model is deliberately small: headings, paragraphs, flat lists, and
// fenced code blocks. It does not aim for CommonMark compliance — no nested
// quotes, tables, or inline emphasis. Parse is total: any input, including
// empty or malformed text, yields a (possibly empty) block sequence.
package document

// Kind identifies the concrete type of a Block.
type Kind int

// Block kinds, one per recognized construct.
const (
	KindHeading Kind = iota
	KindParagraph
	KindUnorderedList
	KindOrderedList
	KindCodeBlock
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindUnorderedList:
		return "unordered-list"
	case KindOrderedList:
		return "ordered-list"
	case KindCodeBlock:
		return "code-block"
	}
	return "unknown"
}

// Block is one structural unit of a parsed document.
//
// The set of implementations is closed: Heading, Paragraph, UnorderedList,
// OrderedList, and CodeBlock. The unexported marker method prevents types
// outside this package from satisfying the interface, so consumers can
// switch over the concrete types exhaustively.
type Block interface {
	Kind() Kind
	block()
}

// Heading is an ATX heading: one to six '#' characters, a space, then text.
type Heading struct {
	Level int // 1..6
	Text  string
}

// Paragraph is one or more consecutive plain lines joined with single spaces.
type Paragraph struct {
	Text string
}

// UnorderedList holds the item texts of consecutive bullet lines.
type UnorderedList struct {
	Items []string
}

// OrderedList holds the item texts of consecutive numbered lines.
// The written ordinals are discarded; position determines order.
type OrderedList struct {
	Items []string
}

// CodeBlock is the verbatim content between a pair of ``` fences.
// Language is the token after the opening fence, or "" if none was given.
type CodeBlock struct {
	Language string
	Code     string
}

func (Heading) Kind() Kind       { return KindHeading }
func (Paragraph) Kind() Kind     { return KindParagraph }
func (UnorderedList) Kind() Kind { return KindUnorderedList }
func (OrderedList) Kind() Kind   { return KindOrderedList }
func (CodeBlock) Kind() Kind     { return KindCodeBlock }

func (Heading) block()       {}
func (Paragraph) block()     {}
func (UnorderedList) block() {}
func (OrderedList) block()   {}
func (CodeBlock) block()     {}
