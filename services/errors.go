package services

import "errors"

// Login
var (
	ErrInvalidInput    = errors.New("employee id and password are required")
	ErrUnknownEmployee = errors.New("unknown employee id")
	ErrAccountInactive = errors.New("account is inactive")
	ErrBadPassword     = errors.New("incorrect password")
	ErrSetupFailed     = errors.New("could not set up credentials")
)

// Orders
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrAlreadyTerminal   = errors.New("order is already completed")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Workers / menu
var (
	ErrWorkerExists   = errors.New("worker id already exists")
	ErrWorkerNotFound = errors.New("worker not found")
	ErrMenuNotFound   = errors.New("menu item not found")
	ErrBadField       = errors.New("invalid field value")
)
