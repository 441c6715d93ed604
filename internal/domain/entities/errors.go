package entities

import "errors"

// Record errors
var (
	ErrNotAnObject = errors.New("meeting record must be a JSON object")
	ErrNilRecord   = errors.New("meeting record is nil")
)
