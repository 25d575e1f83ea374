package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	helpdoc "github.com/vksvicky/Coreveo-sub001"
	"github.com/vksvicky/Coreveo-sub001/document"
	"github.com/vksvicky/Coreveo-sub001/internal/assets"
	"github.com/vksvicky/Coreveo-sub001/style"
)

// Exit codes for the helpdoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
)

// errNoInput signals that neither a topic nor a file was given.
var errNoInput = errors.New("no input: pass --topic, a file path, or \"-\" for stdin")

// run executes the CLI and returns a process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, rest, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr)
		return ExitUsage
	}

	if flags.help {
		printUsage(stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintln(stdout, "helpdoc "+Version)
		return ExitSuccess
	}

	cfg, err := resolveStyle(flags)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	if flags.initStyle {
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitGeneral
		}
		_, _ = stdout.Write(data)
		return ExitSuccess
	}

	loader, err := resolveLoader(flags)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	if flags.list {
		names, err := loader.Topics()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitGeneral
		}
		for _, name := range names {
			fmt.Fprintln(stdout, name)
		}
		return ExitSuccess
	}

	source, err := readSource(flags, rest, stdin, loader)
	if err != nil {
		if errors.Is(err, errNoInput) {
			fmt.Fprintln(stderr, err)
			printUsage(stderr)
			return ExitUsage
		}
		fmt.Fprintln(stderr, err)
		if errors.Is(err, helpdoc.ErrTopicNotFound) || errors.Is(err, helpdoc.ErrInvalidTopicName) {
			return ExitUsage
		}
		return ExitGeneral
	}

	if flags.format == formatOutline {
		writeOutline(stdout, document.Parse(source))
		return ExitSuccess
	}

	var base *url.URL
	if flags.baseURL != "" {
		base, err = url.Parse(flags.baseURL)
		if err != nil {
			fmt.Fprintf(stderr, "invalid base URL %q: %v\n", flags.baseURL, err)
			return ExitUsage
		}
	}

	renderer, err := newRenderer(flags.format, cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	out := renderer.Render(source, base)
	text := out.String()
	if flags.plain {
		text = out.Plain()
	}
	fmt.Fprint(stdout, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(stdout)
	}

	return ExitSuccess
}

// resolveStyle builds the style config from file and flag overrides.
func resolveStyle(f *cliFlags) (style.Config, error) {
	cfg := style.Default()

	if f.styleFile != "" {
		loaded, err := style.LoadFile(f.styleFile)
		if err != nil {
			return style.Config{}, err
		}
		cfg = loaded
	}

	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.wrap >= 0 {
		cfg.WordWrap = f.wrap
	}

	if err := cfg.Validate(); err != nil {
		return style.Config{}, err
	}
	return cfg, nil
}

// resolveLoader picks the bundled loader or a directory override.
func resolveLoader(f *cliFlags) (helpdoc.TopicLoader, error) {
	if f.topicsDir != "" {
		return assets.NewDirLoader(f.topicsDir)
	}
	return assets.NewEmbeddedLoader(), nil
}

// readSource returns the raw markdown from the topic, file, or stdin.
func readSource(f *cliFlags, rest []string, stdin io.Reader, loader helpdoc.TopicLoader) (string, error) {
	if f.topic != "" {
		return loader.LoadTopic(f.topic)
	}

	if len(rest) != 1 {
		return "", errNoInput
	}

	if rest[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(rest[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", rest[0], err)
	}
	return string(data), nil
}

// newRenderer builds the renderer for a non-outline output format.
func newRenderer(format string, cfg style.Config) (helpdoc.Renderer, error) {
	switch format {
	case formatANSI:
		return helpdoc.NewTermRenderer(cfg)
	case formatHTML:
		return helpdoc.NewHTMLRenderer(cfg)
	case formatBlocks:
		return helpdoc.NewBlockRenderer(cfg)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// writeOutline prints a one-line summary per block, for inspecting how a
// document parses.
func writeOutline(w io.Writer, blocks []document.Block) {
	for _, block := range blocks {
		switch b := block.(type) {
		case document.Heading:
			fmt.Fprintf(w, "h%d    %s\n", b.Level, b.Text)
		case document.Paragraph:
			fmt.Fprintf(w, "p     %s\n", truncate(b.Text, 60))
		case document.UnorderedList:
			fmt.Fprintf(w, "ul    %d items\n", len(b.Items))
		case document.OrderedList:
			fmt.Fprintf(w, "ol    %d items\n", len(b.Items))
		case document.CodeBlock:
			lang := b.Language
			if lang == "" {
				lang = "plain"
			}
			lines := 0
			if b.Code != "" {
				lines = strings.Count(b.Code, "\n") + 1
			}
			fmt.Fprintf(w, "code  %s, %d lines\n", lang, lines)
		}
	}
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
