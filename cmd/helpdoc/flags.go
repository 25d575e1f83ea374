package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	topic     string
	format    string
	theme     string
	wrap      int
	styleFile string
	baseURL   string
	topicsDir string
	plain     bool
	list      bool
	initStyle bool
	version   bool
	help      bool
}

// Output formats accepted by --format.
const (
	formatANSI    = "ansi"
	formatHTML    = "html"
	formatBlocks  = "blocks"
	formatOutline = "outline"
)

// parseFlags parses args (without the program name) and returns the flags
// plus any positional arguments (an optional markdown file path).
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("helpdoc", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors and usage are printed by the caller
	fs.Usage = func() {}

	fs.StringVarP(&f.topic, "topic", "t", "", "bundled help topic to render")
	fs.StringVarP(&f.format, "format", "f", formatANSI, "output format: ansi, html, blocks, outline")
	fs.StringVar(&f.theme, "theme", "", "color theme (overrides style file)")
	fs.IntVarP(&f.wrap, "wrap", "w", -1, "word wrap column, 0 disables (overrides style file)")
	fs.StringVar(&f.styleFile, "style", "", "YAML style config file")
	fs.StringVar(&f.baseURL, "base-url", "", "base URL for resolving relative links")
	fs.StringVar(&f.topicsDir, "topics-dir", "", "load topics from a directory instead of the bundle")
	fs.BoolVar(&f.plain, "plain", false, "print the plain-text projection instead of styled output")
	fs.BoolVarP(&f.list, "list", "l", false, "list available topics")
	fs.BoolVar(&f.initStyle, "init-style", false, "print the default style config as YAML")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	switch f.format {
	case formatANSI, formatHTML, formatBlocks, formatOutline:
	default:
		return nil, nil, fmt.Errorf("unknown format %q", f.format)
	}

	return f, fs.Args(), nil
}
