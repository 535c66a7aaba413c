package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid employee code or password")
	ErrAccountRetired     = errors.New("account is retired")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
