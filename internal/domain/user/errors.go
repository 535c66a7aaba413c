package user

import "errors"

var (
	ErrInvalidRole             = errors.New("invalid role")
	ErrActorRequired           = errors.New("actor identity is required")
	ErrOwnerAccessRequired     = errors.New("owner access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
