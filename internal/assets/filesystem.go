package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DirLoader loads help topics from a directory on the filesystem, for
// overriding the bundled documentation during development.
// Implements the Loader interface.
type DirLoader struct {
	basePath string
}

// NewDirLoader creates a DirLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewDirLoader(basePath string) (*DirLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks so containment checks compare real paths.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	return &DirLoader{basePath: absPath}, nil
}

// LoadTopic loads {basePath}/{name}.md.
func (d *DirLoader) LoadTopic(name string) (string, error) {
	if err := ValidateTopicName(name); err != nil {
		return "", err
	}

	path := filepath.Join(d.basePath, name+".md")
	if !strings.HasPrefix(path, d.basePath+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTopicName, name)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- name validated, path contained
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrTopicNotFound, name)
		}
		return "", fmt.Errorf("reading topic %q: %w", name, err)
	}

	return string(content), nil
}

// Topics lists the .md files under the base path in sorted order.
func (d *DirLoader) Topics() ([]string, error) {
	entries, err := os.ReadDir(d.basePath)
	if err != nil {
		return nil, fmt.Errorf("reading topic directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)

	return names, nil
}
