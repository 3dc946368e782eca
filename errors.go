package money

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the precondition that an operation found violated.
// Every error returned by the arithmetic and construction functions of this
// package carries exactly one kind, so callers can switch over it exhaustively.
type ErrorKind uint8

const (
	// KindInvalidAmount means a constructor was given something that is not
	// a whole number of minor units in the supported range.
	KindInvalidAmount ErrorKind = iota + 1
	// KindIncompatibleCurrencies means a binary operation was given
	// amounts denominated in different currencies.
	KindIncompatibleCurrencies
	// KindDivisionByZero means a division was attempted with a zero divisor.
	KindDivisionByZero
	// KindOutOfRange means an argument such as a percentage or a number of
	// parts lies outside the range accepted by the operation.
	KindOutOfRange
	// KindOverflow means the result does not fit into int64 minor units.
	KindOverflow
)

// Sentinel errors, one per [ErrorKind].
// They can be matched with [errors.Is] against any error returned by this package.
var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrIncompatibleCurrencies = errors.New("incompatible currencies")
	ErrDivisionByZero         = errors.New("division by zero")
	ErrOutOfRange             = errors.New("out of range")
	ErrOverflow               = errors.New("amount overflow")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidAmount:
		return ErrInvalidAmount
	case KindIncompatibleCurrencies:
		return ErrIncompatibleCurrencies
	case KindDivisionByZero:
		return ErrDivisionByZero
	case KindOutOfRange:
		return ErrOutOfRange
	case KindOverflow:
		return ErrOverflow
	}
	return nil
}

// String returns the name of the kind as used in error messages.
func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error describes a violated precondition.
// Use [errors.As] to obtain it from an error returned by this package.
type Error struct {
	Kind ErrorKind
	// Curr and Other hold the currencies of the left and right operands
	// of a binary operation. They are only set for [KindIncompatibleCurrencies].
	Curr, Other Currency
	// Reason gives details about the offending argument. It may be empty.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Kind == KindIncompatibleCurrencies {
		msg = fmt.Sprintf("%v %v and %v", msg, e.Curr, e.Other)
	}
	if e.Reason != "" {
		msg = msg + ": " + e.Reason
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error of the same kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

func invalidAmountError(reason string, err error) error {
	return &Error{Kind: KindInvalidAmount, Reason: reason, Err: err}
}

func outOfRangeError(reason string, err error) error {
	return &Error{Kind: KindOutOfRange, Reason: reason, Err: err}
}

func overflowError(err error) error {
	return &Error{Kind: KindOverflow, Err: err}
}

func divisionByZeroError() error {
	return &Error{Kind: KindDivisionByZero}
}

func incompatibleError(a, b Currency) error {
	return &Error{Kind: KindIncompatibleCurrencies, Curr: a, Other: b}
}
