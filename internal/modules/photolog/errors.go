package photolog

import "errors"

var (
	ErrEntryNotFound   = errors.New("photo entry not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrValidation      = errors.New("invalid photolog input")
)
