package entities

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrVersionConflict    = errors.New("version conflict")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrInvalidTab         = errors.New("invalid order tab")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)
