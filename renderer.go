package helpdoc

import "net/url"

// Renderer converts raw help-text markdown into styled output.
//
// Render is total: no input, including text built entirely from control or
// non-UTF-8 bytes, may fail. Content that cannot be styled is returned as
// plain text of identical length to the input (see Unstyled). base, when
// non-nil, resolves relative links and images inside the markdown to
// absolute ones; it has no effect on block structure or fallback behavior.
//
// Implementations must not mutate their input, perform I/O, or keep state
// across calls: rendering the same arguments twice yields equivalent
// results, and concurrent calls need no coordination.
type Renderer interface {
	Render(markdown string, base *url.URL) StyledText
}
