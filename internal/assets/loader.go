// Package assets provides the bundled help documentation shipped with the
// application, plus a filesystem loader for overriding it during
// development. Topics are raw markdown; parsing and styling happen in the
// rendering layer.
package assets

// Loader defines the contract for loading help topics.
// Implementations may load from embedded assets or the filesystem.
type Loader interface {
	// LoadTopic returns the raw markdown for a topic name (without the
	// .md extension). Returns ErrTopicNotFound if the topic doesn't
	// exist and ErrInvalidTopicName if the name contains invalid
	// characters.
	LoadTopic(name string) (string, error)

	// Topics lists the available topic names in sorted order.
	Topics() ([]string, error)
}
