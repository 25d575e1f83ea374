// Package helpdoc renders the application's help documentation.
//
// # Quick Start
//
// Create a viewer and render a bundled topic:
//
//	viewer, err := helpdoc.NewViewer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := viewer.RenderTopic("getting-started")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(out.String())
//
// # Rendering Contract
//
// Renderer is the single-method capability at the heart of the package:
// markdown in, StyledText out, total over every input. Content that cannot
// be styled, including invalid byte sequences, is returned as plain text of
// identical length to the input. A help viewer must always display
// something, so neither parsing nor rendering has a failure path.
//
// Three implementations ship with the package:
//
//   - TermRenderer: ANSI terminal output via glamour
//   - HTMLRenderer: an HTML fragment via goldmark, with chroma classes
//   - BlockRenderer: terminal output built directly from the block model
//
// # Document Model
//
// The document subpackage exposes the block parser on its own for callers
// that want the structured model rather than opaque styled text:
//
//	for _, b := range document.Parse(source) {
//	    switch b := b.(type) {
//	    case document.Heading:
//	        fmt.Println(b.Level, b.Text)
//	    }
//	}
//
// # Configuration
//
// Styling is explicit: renderers take a style.Config at construction and
// read no ambient terminal or process state.
//
//	cfg := style.Default()
//	cfg.Theme = "light"
//	r, err := helpdoc.NewTermRenderer(cfg)
//	viewer, err := helpdoc.NewViewer(helpdoc.WithRenderer(r))
package helpdoc
