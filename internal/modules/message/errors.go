package message

import "errors"

var (
	ErrNotFound   = errors.New("message not found")
	ErrValidation = errors.New("invalid message input")
)
