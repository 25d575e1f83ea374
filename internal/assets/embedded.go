package assets

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed topics/*.md
var topics embed.FS

// EmbeddedLoader loads help topics bundled into the binary.
// Implements the Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTopic loads a bundled help topic by name.
// The name should not include the .md extension.
func (e *EmbeddedLoader) LoadTopic(name string) (string, error) {
	if err := ValidateTopicName(name); err != nil {
		return "", err
	}

	content, err := topics.ReadFile("topics/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTopicNotFound, name)
	}

	return string(content), nil
}

// Topics lists the bundled topic names in sorted order.
func (e *EmbeddedLoader) Topics() ([]string, error) {
	entries, err := topics.ReadDir("topics")
	if err != nil {
		return nil, fmt.Errorf("reading embedded topics: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)

	return names, nil
}
