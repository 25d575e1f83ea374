package helpdoc

// StyledText is the result of rendering: styled output for display plus a
// plain-text projection for assertions and accessibility.
//
// When styling was not possible, the projection is the original input,
// character for character, so callers always have something to show.
type StyledText struct {
	content string
	plain   string
	styled  bool
}

// Styled builds a StyledText from styled content and its plain projection.
func Styled(content, plain string) StyledText {
	return StyledText{content: content, plain: plain, styled: true}
}

// Unstyled builds the fallback StyledText: the text is both the content and
// the projection, unmodified.
func Unstyled(text string) StyledText {
	return StyledText{content: text, plain: text}
}

// String returns the styled content (ANSI sequences, HTML, or plain text,
// depending on the renderer that produced it).
func (s StyledText) String() string { return s.content }

// Plain returns the plain-text projection.
func (s StyledText) Plain() string { return s.plain }

// Styled reports whether presentation attributes were applied. False means
// the fallback path was taken and Plain() equals the original input.
func (s StyledText) Styled() bool { return s.styled }
