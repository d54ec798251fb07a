package usecase

import "errors"

var (
	ErrInternal        = errors.New("internal error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrProfileNotFound = errors.New("profile not found")
	ErrMenteeNotFound  = errors.New("mentee profile not found")
	ErrMatchNotFound   = errors.New("match not found")
)
