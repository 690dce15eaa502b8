package domain

import "errors"

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidKind   = errors.New("kind must be masuk or keluar")
)
