package assets

import (
	"fmt"
	"strings"
)

// ValidateTopicName checks that a topic name is safe for use as a filename.
// Returns ErrInvalidTopicName if the name is empty or contains path
// separators, dots, or traversal characters.
func ValidateTopicName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTopicName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidTopicName, name)
	}
	return nil
}
