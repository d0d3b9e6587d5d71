package service

import "errors"

// Error definitions
var (
	ErrInvalidQuantity  = errors.New("quantity out of range")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrInvalidAmount    = errors.New("amount out of range")
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidName      = errors.New("name must not be blank")
	ErrInvalidSource    = errors.New("funding source must be cash or bank")
)
