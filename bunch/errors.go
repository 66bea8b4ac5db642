package bunch

import "errors"

var (
	// ErrKeyNotFound reports a lookup or delete miss with no fallback
	// available.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidArgument reports a malformed request, such as a subset with
	// neither include nor exclude or a batch assignment with mismatched
	// lengths.
	ErrInvalidArgument = errors.New("invalid argument")
)
