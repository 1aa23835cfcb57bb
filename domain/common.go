package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrStorageUnavailable = errors.New("receipt storage unavailable")
	ErrInvalidDate        = errors.New("date must not be empty")
)
