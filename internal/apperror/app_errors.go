package apperror

import "errors"

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrEmptySessionID = errors.New("session id is empty")
	ErrInvalidCell    = errors.New("cell must be an integer")
)
