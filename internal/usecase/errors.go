package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrUpstream           = errors.New("upstream unavailable")
	ErrHistoryUnavailable = errors.New("history unavailable")
	ErrInternal           = errors.New("internal error")
)
