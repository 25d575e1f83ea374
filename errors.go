package helpdoc

import "github.com/vksvicky/Coreveo-sub001/internal/assets"

// Sentinel errors for topic loading. They are shared with the internal
// assets package so errors.Is works across the boundary, and exported here
// so custom TopicLoader implementations can return them.
var (
	// ErrTopicNotFound indicates the requested help topic does not exist.
	ErrTopicNotFound = assets.ErrTopicNotFound

	// ErrInvalidTopicName indicates the topic name contains invalid
	// characters such as path separators or traversal sequences.
	ErrInvalidTopicName = assets.ErrInvalidTopicName
)
