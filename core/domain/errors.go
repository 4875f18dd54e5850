package domain

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidInput  = errors.New("invalid input data")
	ErrInternal      = errors.New("internal server error")
)
