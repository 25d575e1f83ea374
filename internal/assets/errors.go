package assets

import "errors"

// Sentinel errors for topic loading.
var (
	// ErrTopicNotFound indicates the requested help topic does not exist.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrInvalidTopicName indicates the topic name contains invalid
	// characters such as path separators or traversal sequences.
	ErrInvalidTopicName = errors.New("invalid topic name")

	// ErrInvalidBasePath indicates the configured base path is not a valid
	// directory.
	ErrInvalidBasePath = errors.New("invalid base path")
)
