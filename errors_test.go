package money

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindInvalidAmount, "invalid amount"},
		{KindIncompatibleCurrencies, "incompatible currencies"},
		{KindDivisionByZero, "division by zero"},
		{KindOutOfRange, "out of range"},
		{KindOverflow, "amount overflow"},
		{ErrorKind(0), "ErrorKind(0)"},
		{ErrorKind(42), "ErrorKind(42)"},
	}
	for _, tt := range tests {
		got := tt.kind.String()
		if got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: KindDivisionByZero}, "division by zero"},
		{&Error{Kind: KindOutOfRange, Reason: "percent must be between 0 and 100"}, "out of range: percent must be between 0 and 100"},
		{&Error{Kind: KindIncompatibleCurrencies, Curr: USD, Other: EUR}, "incompatible currencies USD and EUR"},
		{&Error{Kind: KindOverflow, Err: errors.New("boom")}, "amount overflow: boom"},
		{&Error{Kind: KindInvalidAmount, Reason: "bad", Err: errors.New("boom")}, "invalid amount: bad: boom"},
	}
	for _, tt := range tests {
		got := tt.err.Error()
		if got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestError_Is(t *testing.T) {
	sentinels := map[ErrorKind]error{
		KindInvalidAmount:          ErrInvalidAmount,
		KindIncompatibleCurrencies: ErrIncompatibleCurrencies,
		KindDivisionByZero:         ErrDivisionByZero,
		KindOutOfRange:             ErrOutOfRange,
		KindOverflow:               ErrOverflow,
	}
	for kind := range sentinels {
		err := fmt.Errorf("wrapped: %w", &Error{Kind: kind})
		for other, sentinel := range sentinels {
			got := errors.Is(err, sentinel)
			want := kind == other
			if got != want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", err, sentinel, got, want)
			}
		}
	}

	if errors.Is(&Error{}, ErrInvalidAmount) {
		t.Errorf("errors.Is(&Error{}, %v) = true, want false", ErrInvalidAmount)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("wrapped: %w", overflowError(cause))
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, %v) = false, want true", err, cause)
	}
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("errors.Is(%v, %v) = false, want true", err, ErrOverflow)
	}
}

func TestError_Kind(t *testing.T) {
	tests := map[string]struct {
		op   func() error
		want ErrorKind
	}{
		"New": {
			func() error { _, err := NewFromFloat64(100.5, USD); return err },
			KindInvalidAmount,
		},
		"Add": {
			func() error { _, err := MustNew(1, USD).Add(MustNew(1, EUR)); return err },
			KindIncompatibleCurrencies,
		},
		"QuoFloat64": {
			func() error { _, err := MustNew(1, USD).QuoFloat64(0); return err },
			KindDivisionByZero,
		},
		"PercentFloat64": {
			func() error { _, err := MustNew(1, USD).PercentFloat64(101); return err },
			KindOutOfRange,
		},
		"Split": {
			func() error { _, err := MustNew(1, USD).Split(0); return err },
			KindOutOfRange,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.op()
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("errors.As(%v) = false, want true", err)
			}
			if e.Kind != tt.want {
				t.Errorf("%v kind = %v, want %v", name, e.Kind, tt.want)
			}
		})
	}
}
