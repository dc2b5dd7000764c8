package domain

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrRecordNotFound     = errors.New("record not found")
	ErrEditConflict       = errors.New("edit conflict")
	ErrSeatAlreadyTaken   = errors.New("seat(s) are already taken for this session")
	ErrThemeAlreadyExists = errors.New("show theme already exists")
	ErrThemeAssignedTwice = errors.New("theme assigned to the show more than once")
)
