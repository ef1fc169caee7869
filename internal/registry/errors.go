package registry

import "errors"

var (
	// ErrInvalidArgument reports an empty or duplicated participant name, or a negative score.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflict reports a participant that is already playing in an active match.
	ErrConflict = errors.New("participant already playing")

	// ErrNotFound reports that no active match is indexed under the given pair.
	ErrNotFound = errors.New("match not found")
)
