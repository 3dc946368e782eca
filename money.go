package money

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Money type represents an amount of money as an integer number of minor units
// of its currency (e.g. cents, pennies, fils).
// Its zero value corresponds to "XXX 0", where [XXX] indicates that no currency
// is involved.
//
// Money is immutable: every operation returns a new value.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// The number of units is kept within [-math.MaxInt64, math.MaxInt64], so
// [Money.Neg] and [Money.Abs] never overflow.
type Money struct {
	units int64    // amount in minor units
	curr  Currency // ISO 4217 currency
}

// newMoneyUnsafe creates money without checking the arguments.
// Use it only if you are absolutely sure that the arguments are valid.
func newMoneyUnsafe(units int64, c Currency) Money {
	return Money{units: units, curr: c}
}

// newMoneySafe creates money and checks the arguments.
func newMoneySafe(units int64, c Currency) (Money, error) {
	if !c.IsValid() {
		return Money{}, invalidAmountError(fmt.Sprintf("currency index %d is not in the currency table", uint8(c)), nil)
	}
	if units == math.MinInt64 {
		return Money{}, invalidAmountError(fmt.Sprintf("%v units is out of range", units), nil)
	}
	return newMoneyUnsafe(units, c), nil
}

// New returns money equal to the given number of minor units of currency curr.
// For example, New(1025, USD) is 10.25 US dollars and New(1025, JPY) is 1025 yen.
//
// New returns an error if:
//   - the number of units is math.MinInt64;
//   - the currency is not present in the currency table.
func New(units int64, curr Currency) (Money, error) {
	m, err := newMoneySafe(units, curr)
	if err != nil {
		return Money{}, fmt.Errorf("creating money: %w", err)
	}
	return m, nil
}

// MustNew is like [New] but panics if the money cannot be constructed.
// It simplifies safe initialization of global variables holding money.
func MustNew(units int64, curr Currency) Money {
	m, err := New(units, curr)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", units, curr, err))
	}
	return m
}

// NewFromFloat64 converts a float holding a number of minor units to money.
// Unlike [New], the float may carry a value that is not a whole number,
// so NewFromFloat64 checks it.
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the float has a fractional part, such as 100.5;
//   - the float is outside the range of int64 minor units;
//   - the currency is not present in the currency table.
func NewFromFloat64(units float64, curr Currency) (Money, error) {
	m, err := newFromFloat64(units, curr)
	if err != nil {
		return Money{}, fmt.Errorf("converting float %v: %w", units, err)
	}
	return m, nil
}

func newFromFloat64(units float64, curr Currency) (Money, error) {
	switch {
	case math.IsNaN(units) || math.IsInf(units, 0):
		return Money{}, invalidAmountError(fmt.Sprintf("special value %v", units), nil)
	case units != math.Trunc(units):
		return Money{}, invalidAmountError("amount must be an integer", nil)
	case units >= math.MaxInt64 || units <= math.MinInt64:
		// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
		return Money{}, invalidAmountError("amount is out of range", nil)
	}
	return newMoneySafe(int64(units), curr)
}

// NewFromDecimal converts a decimal holding a value in major units
// (e.g. dollars, pounds) to money.
// See also method [Money.Decimal].
//
// NewFromDecimal returns an error if:
//   - the decimal has more significant digits after the decimal point than
//     the scale of the currency, for example 10.255 for US dollars;
//   - the result is outside the range of int64 minor units;
//   - the currency is not present in the currency table.
func NewFromDecimal(curr Currency, amount decimal.Decimal) (Money, error) {
	m, err := newFromDecimal(curr, amount)
	if err != nil {
		return Money{}, fmt.Errorf("converting decimal %v: %w", amount, err)
	}
	return m, nil
}

func newFromDecimal(curr Currency, d decimal.Decimal) (Money, error) {
	if !curr.IsValid() {
		return newMoneySafe(0, curr)
	}
	if d.MinScale() > curr.Scale() {
		return Money{}, invalidAmountError(fmt.Sprintf("%v has more than %v digit(s) after the decimal point", d, curr.Scale()), nil)
	}
	units, ok := minorUnits(d, curr.Scale())
	if !ok {
		return Money{}, invalidAmountError("amount is out of range", nil)
	}
	return newMoneySafe(units, curr)
}

// ParseMoney converts currency and decimal strings to money.
// The amount is given in major units, so ParseMoney("USD", "10.25") is
// 1025 cents.
// See also constructors [ParseCurr] and [decimal.Parse].
//
// ParseMoney returns an error if the currency is unknown, the amount is
// not a decimal number, or the amount is rejected by [NewFromDecimal].
func ParseMoney(curr, amount string) (Money, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := decimal.Parse(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", invalidAmountError("", err))
	}
	// Money
	m, err := newFromDecimal(c, d)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	return m, nil
}

// MustParseMoney is like [ParseMoney] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding money.
func MustParseMoney(curr, amount string) Money {
	m, err := ParseMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// Units returns the amount in minor units of currency.
func (m Money) Units() int64 {
	return m.units
}

// Curr returns the currency of the money.
func (m Money) Curr() Currency {
	return m.curr
}

// Decimal returns the exact value in major units, with as many digits after
// the decimal point as the scale of the currency.
// For example, 1025 cents is returned as 10.25 and 1000 cents as 10.00.
func (m Money) Decimal() decimal.Decimal {
	// |units| < 10^19 and the scale is at most 4, so this cannot fail.
	return decimal.MustNew(m.units, m.curr.Scale())
}

// Float64 returns the value in major units as the nearest binary
// floating-point number, for example 100.25 for 10025 cents.
// It is meant for display and interoperability only: arithmetic on the result
// is subject to floating-point error.
func (m Money) Float64() float64 {
	// ok is false only for values beyond float64 range, and |units| <= MaxInt64.
	f, _ := m.Decimal().Float64()
	return f
}

// Parts returns the whole and fractional parts of the value in major units,
// such that units = whole * 10^scale + frac.
// Both parts carry the sign of the amount: -10.25 US dollars is (-10, -25),
// and -0.05 is (0, -5).
func (m Money) Parts() (whole, frac int64) {
	p := pow10[m.curr.Scale()]
	return m.units / p, m.units % p
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	switch {
	case m.units < 0:
		return -1
	case m.units > 0:
		return 1
	}
	return 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.units == 0
}

// IsNeg returns true if the amount is below zero.
func (m Money) IsNeg() bool {
	return m.units < 0
}

// IsPos returns true if the amount is above zero.
func (m Money) IsPos() bool {
	return m.units > 0
}

// Abs returns the absolute value of the money.
func (m Money) Abs() Money {
	if m.units < 0 {
		return m.Neg()
	}
	return m
}

// Neg returns money with the opposite sign.
func (m Money) Neg() Money {
	return newMoneyUnsafe(-m.units, m.curr)
}

// SameCurr returns true if both values are denominated in the same currency.
// See also method [Money.Curr].
func (m Money) SameCurr(b Money) bool {
	return m.curr == b.curr
}

// Cmp compares amounts and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if the amounts are denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	if err := assertCompatible(m, b); err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, err)
	}
	switch {
	case m.units < b.units:
		return -1, nil
	case m.units > b.units:
		return 1, nil
	}
	return 0, nil
}

// Min returns the smaller amount.
//
// Min returns an error if the amounts are denominated in different currencies.
func (m Money) Min(b Money) (Money, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return Money{}, err
	}
	if c <= 0 {
		return m, nil
	}
	return b, nil
}

// Max returns the larger amount.
//
// Max returns an error if the amounts are denominated in different currencies.
func (m Money) Max(b Money) (Money, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return Money{}, err
	}
	if c >= 0 {
		return m, nil
	}
	return b, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the money, such as "USD 10.25".
// See also methods [Currency.String] and [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.curr.Code() + " " + m.Decimal().String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.67    | Currency and amount        |
//	| %q     | "USD 5.67"  | Quoted currency and amount |
//	| %f     | 5.67        | Amount                     |
//	| %d     | 567         | Amount in minor units      |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+' and ' ' flags can be used with all verbs except %c.
// Locale-aware formatting is provided by the display package.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	c, d := m.Curr(), m.Decimal()

	// Digits
	var digs string
	switch verb {
	case 'c', 'C':
		// skip
	case 'd', 'D':
		digs = fmt.Sprint(m.Abs().units)
	default:
		digs = d.Abs().String()
	}

	// Arithmetic sign
	var sign string
	if verb != 'c' && verb != 'C' {
		switch {
		case d.IsNeg():
			sign = "-"
		case state.Flag('+'):
			sign = "+"
		case state.Flag(' '):
			sign = " "
		}
	}

	// Currency code
	var curr string
	switch verb {
	case 'f', 'F', 'd', 'D':
		// skip
	case 'c', 'C':
		curr = c.Code()
	default:
		curr = c.Code() + " "
	}

	text := curr + sign + digs
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(text) {
		pad := make([]byte, w-len(text))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			text += string(pad)
		} else {
			text = string(pad) + text
		}
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Money="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}
