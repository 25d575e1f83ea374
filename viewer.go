package helpdoc

import (
	"fmt"
	"net/url"

	"github.com/vksvicky/Coreveo-sub001/internal/assets"
	"github.com/vksvicky/Coreveo-sub001/style"
)

// Compile-time interface implementation checks.
var (
	_ Renderer    = (*TermRenderer)(nil)
	_ Renderer    = (*HTMLRenderer)(nil)
	_ Renderer    = (*BlockRenderer)(nil)
	_ TopicLoader = (*assets.EmbeddedLoader)(nil)
	_ TopicLoader = (*assets.DirLoader)(nil)
)

// TopicLoader defines the contract for loading raw help topics.
// Implementations may load from embedded assets, the filesystem, or
// anywhere else; the viewer passes whatever they return to the renderer
// unmodified.
type TopicLoader interface {
	// LoadTopic returns the raw markdown for a topic name (without any
	// file extension). Returns ErrTopicNotFound if the topic doesn't
	// exist and ErrInvalidTopicName if the name is not acceptable.
	LoadTopic(name string) (string, error)

	// Topics lists the available topic names in sorted order.
	Topics() ([]string, error)
}

// Viewer orchestrates help display: it loads a topic and hands the raw text
// to the configured renderer. The viewer performs no preprocessing of the
// source, so the renderer always observes exactly what the loader returned.
type Viewer struct {
	cfg      viewerConfig
	loader   TopicLoader
	renderer Renderer
}

// viewerConfig holds internal configuration for Viewer.
type viewerConfig struct {
	style   style.Config
	baseURL *url.URL
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithStyle sets the style configuration for the default renderer.
// Ignored when WithRenderer supplies a renderer of its own.
func WithStyle(cfg style.Config) Option {
	return func(v *Viewer) {
		v.cfg.style = cfg
	}
}

// WithRenderer replaces the default terminal renderer.
func WithRenderer(r Renderer) Option {
	return func(v *Viewer) {
		v.renderer = r
	}
}

// WithTopicLoader replaces the bundled topic loader.
func WithTopicLoader(l TopicLoader) Option {
	return func(v *Viewer) {
		v.loader = l
	}
}

// WithBaseURL sets the base for resolving relative links inside topics.
func WithBaseURL(base *url.URL) Option {
	return func(v *Viewer) {
		v.cfg.baseURL = base
	}
}

// NewViewer creates a Viewer with the bundled topics and a terminal
// renderer using the default style. Use options to customize.
func NewViewer(opts ...Option) (*Viewer, error) {
	v := &Viewer{
		cfg: viewerConfig{style: style.Default()},
	}

	for _, opt := range opts {
		opt(v)
	}

	if v.loader == nil {
		v.loader = assets.NewEmbeddedLoader()
	}

	// Create renderer if not injected (e.g., by tests)
	if v.renderer == nil {
		r, err := NewTermRenderer(v.cfg.style)
		if err != nil {
			return nil, err
		}
		v.renderer = r
	}

	return v, nil
}

// Render styles raw markdown. It never fails; see Renderer.
func (v *Viewer) Render(markdown string) StyledText {
	return v.renderer.Render(markdown, v.cfg.baseURL)
}

// RenderTopic loads a topic and renders it. Errors come only from the
// loading side; rendering itself cannot fail.
func (v *Viewer) RenderTopic(name string) (StyledText, error) {
	raw, err := v.loader.LoadTopic(name)
	if err != nil {
		return StyledText{}, fmt.Errorf("loading topic %q: %w", name, err)
	}
	return v.Render(raw), nil
}

// Topics lists the available topic names.
func (v *Viewer) Topics() ([]string, error) {
	return v.loader.Topics()
}
