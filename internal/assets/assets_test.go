package assets

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadTopic(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("known topic", func(t *testing.T) {
		t.Parallel()

		content, err := loader.LoadTopic("getting-started")
		if err != nil {
			t.Fatalf("LoadTopic() error = %v", err)
		}
		if !strings.Contains(content, "# Getting Started") {
			t.Errorf("LoadTopic() missing heading:\n%s", content)
		}
	})

	t.Run("unknown topic", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.LoadTopic("nonexistent"); !errors.Is(err, ErrTopicNotFound) {
			t.Errorf("LoadTopic() = %v, want %v", err, ErrTopicNotFound)
		}
	})

	t.Run("invalid names", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "../secrets", "a/b", `a\b`, "topic.md"} {
			if _, err := loader.LoadTopic(name); !errors.Is(err, ErrInvalidTopicName) {
				t.Errorf("LoadTopic(%q) = %v, want %v", name, err, ErrInvalidTopicName)
			}
		}
	})
}

func TestEmbeddedLoader_Topics(t *testing.T) {
	t.Parallel()

	names, err := NewEmbeddedLoader().Topics()
	if err != nil {
		t.Fatalf("Topics() error = %v", err)
	}

	want := []string{"getting-started", "permissions", "sensors", "shortcuts"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Topics() = %v, want %v", names, want)
	}
}

func TestDirLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom.md"), []byte("# Custom\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader, err := NewDirLoader(dir)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	content, err := loader.LoadTopic("custom")
	if err != nil {
		t.Fatalf("LoadTopic() error = %v", err)
	}
	if content != "# Custom\n" {
		t.Errorf("LoadTopic() = %q", content)
	}

	if _, err := loader.LoadTopic("missing"); !errors.Is(err, ErrTopicNotFound) {
		t.Errorf("LoadTopic(missing) = %v, want %v", err, ErrTopicNotFound)
	}

	names, err := loader.Topics()
	if err != nil {
		t.Fatalf("Topics() error = %v", err)
	}
	if !reflect.DeepEqual(names, []string{"custom"}) {
		t.Errorf("Topics() = %v, want [custom]", names)
	}
}

func TestNewDirLoader_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing directory", filepath.Join(t.TempDir(), "nope")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewDirLoader(tt.path); !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("NewDirLoader(%q) = %v, want %v", tt.path, err, ErrInvalidBasePath)
			}
		})
	}

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := NewDirLoader(path); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewDirLoader(file) = %v, want %v", err, ErrInvalidBasePath)
		}
	})
}
