package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrValidation        = errors.New("validation error")
	ErrInvalidReferral   = errors.New("invalid referral code")
	ErrSelfReferral      = errors.New("self referral is not allowed")
	ErrAlreadyBound      = errors.New("invitee already bound to an inviter")
	ErrNotEnoughBalance  = errors.New("not enough balance")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// InvalidTransitionError уточняет ErrInvalidTransition парой статусов.
// Проверяется через errors.Is(err, ErrInvalidTransition).
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
