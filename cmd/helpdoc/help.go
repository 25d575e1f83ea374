package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: helpdoc [flags] [file.md]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Coreveo help documentation to the terminal or HTML.")
	fmt.Fprintln(w, "Reads from a bundled topic, a markdown file, or stdin (\"-\").")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -t, --topic <name>        Bundled help topic to render")
	fmt.Fprintln(w, "      --topics-dir <dir>    Load topics from a directory instead of the bundle")
	fmt.Fprintln(w, "  -l, --list                List available topics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: ansi, html, blocks, outline")
	fmt.Fprintln(w, "      --plain               Print the plain-text projection, no styling")
	fmt.Fprintln(w, "      --base-url <url>      Base URL for resolving relative links")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Style:")
	fmt.Fprintln(w, "      --style <file>        YAML style config file")
	fmt.Fprintln(w, "      --theme <name>        Color theme (overrides style file)")
	fmt.Fprintln(w, "  -w, --wrap <n>            Word wrap column, 0 disables (overrides style file)")
	fmt.Fprintln(w, "      --init-style          Print the default style config as YAML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Misc:")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
