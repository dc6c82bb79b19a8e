package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies core errors for translation at the HTTP boundary.
type Kind int

const (
	KindUnknown Kind = iota
	// KindBusinessRule is a user-facing rejection (limits, timing, state).
	// Resolved before any write is attempted, never retried.
	KindBusinessRule
	// KindNotFound covers missing or soft-deleted entities.
	KindNotFound
	// KindConfigMissing means an entitlement catalogue row is absent. This is
	// a seeding defect, fatal and operator-facing, not a user error.
	KindConfigMissing
	// KindConflict marks a detected write race; the caller may retry once.
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func BusinessRule(msg string) error {
	return &Error{Kind: KindBusinessRule, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func ConfigMissing(msg string) error {
	return &Error{Kind: KindConfigMissing, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the classification of err, or KindUnknown for plain errors
// (store failures and other server-side conditions).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
