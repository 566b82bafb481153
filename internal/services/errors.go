package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error kinds. Every error returned by a service wraps exactly one of them.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrStorage    = errors.New("storage error")
)

var (
	ErrNameRequired    = fmt.Errorf("%w: name is required", ErrValidation)
	ErrNameTooLong     = fmt.Errorf("%w: name must be at most %d characters", ErrValidation, MaxNameLength)
	ErrContentRequired = fmt.Errorf("%w: content is required", ErrValidation)
	ErrContentTooLong  = fmt.Errorf("%w: content must be at most %d characters", ErrValidation, MaxContentLength)

	ErrUserNotFound   = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrTaskNotFound   = fmt.Errorf("%w: task not found", ErrNotFound)
	ErrFollowNotFound = fmt.Errorf("%w: follow not found", ErrNotFound)
	ErrTargetNotFound = fmt.Errorf("%w: target user not found", ErrNotFound)

	ErrAdminRequired = fmt.Errorf("%w: only an admin can perform this action", ErrForbidden)
)

const (
	MaxNameLength    = 100
	MaxContentLength = 500
)

// storageError passes domain errors through unchanged and marks everything
// else as a storage failure of op.
func storageError(op string, err error) error {
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrForbidden) {
		return err
	}
	return fmt.Errorf("%w: failed to %s: %w", ErrStorage, op, err)
}

func validateText(value string, limit int, required, tooLong error) error {
	if strings.TrimSpace(value) == "" {
		return required
	}
	if utf8.RuneCountInString(value) > limit {
		return tooLong
	}
	return nil
}
