package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrFormat       = errors.New("invalid dataset format")
	ErrNoCard       = errors.New("no card in play")
	ErrUnsupported  = errors.New("unsupported dataset source")
)
