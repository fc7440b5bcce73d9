package services

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/notice-board/database"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrNotFound           = errors.New("not found")
	ErrNotAdmin           = errors.New("owner is not an admin")
	ErrStoreFailure       = database.ErrStoreFailure

	ErrInvalidExpiryDate = fmt.Errorf("%w: expiry date must be YYYY-MM-DD", ErrValidation)
)
