package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSetupKey    = errors.New("invalid setup key")
	ErrAdminExists        = errors.New("admin account already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrNotFound           = errors.New("admin not found")
	ErrValidation         = errors.New("invalid admin input")
)
