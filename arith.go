package money

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

var hundred = decimal.MustNew(100, 0)

// assertCompatible returns an error unless a and b are denominated in the
// same currency. Every binary operation on two amounts goes through it.
func assertCompatible(a, b Money) error {
	if !a.SameCurr(b) {
		return incompatibleError(a.Curr(), b.Curr())
	}
	return nil
}

// Add returns the sum of amounts m and b.
// No rounding is involved.
//
// Add returns an error if:
//   - amounts are denominated in different currencies;
//   - the sum does not fit into int64 minor units.
func (m Money) Add(b Money) (Money, error) {
	c, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) add(b Money) (Money, error) {
	if err := assertCompatible(m, b); err != nil {
		return Money{}, err
	}
	x, y := m.units, b.units
	if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < -math.MaxInt64-y) {
		return Money{}, overflowError(nil)
	}
	return newMoneyUnsafe(x+y, m.curr), nil
}

// Sub returns the difference between amounts m and b.
// No rounding is involved.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies;
//   - the difference does not fit into int64 minor units.
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) sub(b Money) (Money, error) {
	if err := assertCompatible(m, b); err != nil {
		return Money{}, err
	}
	// b.units is never math.MinInt64, so negating it is safe.
	return m.add(b.Neg())
}

// Mul returns the product of amount m and factor e, rounded to the scale of
// the currency using [rounding half to even] (banker's rounding).
// For example, 0.05 US dollars multiplied by 0.5 is 0.02,
// while 0.07 multiplied by 0.5 is 0.04.
//
// The product is computed exactly, so the result is correctly rounded at any
// magnitude.
//
// Mul returns an error if the product does not fit into int64 minor units.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) Mul(e decimal.Decimal) (Money, error) {
	c, err := m.mul(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return c, nil
}

// MulFloat64 is like [Money.Mul] but takes a binary floating-point factor.
// The factor is converted to the shortest decimal that represents it,
// so multiplying by 0.25 is exact.
//
// MulFloat64 returns an error if the factor is NaN or an infinity, or
// if the product does not fit into int64 minor units.
func (m Money) MulFloat64(f float64) (Money, error) {
	e, err := floatArg(f)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, f, err)
	}
	return m.Mul(e)
}

func (m Money) mul(e decimal.Decimal) (Money, error) {
	// The currency scale cancels out: rounding major units to it is rounding
	// units * e to an integer.
	units, ok := mulHalfEven(m.units, e.Coef(), e.IsNeg(), e.Scale())
	if !ok {
		return Money{}, overflowError(nil)
	}
	return newMoneyUnsafe(units, m.curr), nil
}

// Quo returns the quotient of amount m and divisor e, rounded to the scale of
// the currency using [rounding half to even] (banker's rounding).
// The tie is decided on the exact quotient, without intermediate rounding.
// See also method [Money.Split].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the quotient does not fit into int64 minor units.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) Quo(e decimal.Decimal) (Money, error) {
	c, err := m.quo(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return c, nil
}

// QuoFloat64 is like [Money.Quo] but takes a binary floating-point divisor.
//
// QuoFloat64 returns an error if the divisor is 0, NaN or an infinity, or
// if the quotient does not fit into int64 minor units.
func (m Money) QuoFloat64(f float64) (Money, error) {
	if f == 0 {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, f, divisionByZeroError())
	}
	e, err := floatArg(f)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, f, err)
	}
	return m.Quo(e)
}

func (m Money) quo(e decimal.Decimal) (Money, error) {
	if e.IsZero() {
		return Money{}, divisionByZeroError()
	}
	// Minor units divide directly: rounding the quotient to an integer
	// number of units is rounding to the scale of the currency.
	d := decimal.MustNew(m.units, 0)
	q, err := quoHalfEven(d, e)
	if err != nil {
		return Money{}, err
	}
	units, ok := minorUnits(q, 0)
	if !ok {
		return Money{}, overflowError(nil)
	}
	return newMoneyUnsafe(units, m.curr), nil
}

// Percent returns p percent of amount m, rounded to the scale of the currency
// using [rounding half to even] (banker's rounding).
// For example, 33 percent of 10.00 US dollars is 3.30.
//
// Percent returns an error if p is less than 0 or greater than 100, or if
// p has more than 17 significant digits after the decimal point.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) Percent(p decimal.Decimal) (Money, error) {
	c, err := m.percent(p)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v%% of %v]: %w", p, m, err)
	}
	return c, nil
}

// PercentFloat64 is like [Money.Percent] but takes a binary floating-point
// percentage.
//
// PercentFloat64 returns an error if p is NaN, less than 0 or greater than 100.
func (m Money) PercentFloat64(p float64) (Money, error) {
	e, err := floatArg(p)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v%% of %v]: %w", p, m, err)
	}
	return m.Percent(e)
}

func (m Money) percent(p decimal.Decimal) (Money, error) {
	if p.IsNeg() || p.Cmp(hundred) > 0 {
		return Money{}, outOfRangeError("percent must be between 0 and 100", nil)
	}
	// Dividing by 100 only shifts the decimal point by two digits.
	p = p.Trim(0)
	scale := p.Scale() + 2
	if scale > maxMulScale {
		return Money{}, outOfRangeError(fmt.Sprintf("percent must have at most %v digits after the decimal point", maxMulScale-2), nil)
	}
	units, ok := mulHalfEven(m.units, p.Coef(), false, scale)
	if !ok {
		return Money{}, overflowError(nil)
	}
	return newMoneyUnsafe(units, m.curr), nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remaining minor units are distributed among the first parts
// of the slice, one unit each.
// See also method [Money.Quo].
//
// Split returns an error if the number of parts is not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	r, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return r, nil
}

func (m Money) split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, outOfRangeError("number of parts must be positive", nil)
	}
	n := int64(parts)
	quo, rem := m.units/n, m.units%n

	// Reminder distribution
	ulp := int64(1)
	if rem < 0 {
		ulp, rem = -1, -rem
	}
	res := make([]Money, parts)
	for i := range res {
		res[i] = newMoneyUnsafe(quo, m.curr)
		if int64(i) < rem {
			res[i].units += ulp
		}
	}
	return res, nil
}

// floatArg converts a factor, divisor or percentage given as a float.
func floatArg(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, outOfRangeError(fmt.Sprintf("special value %v", f), nil)
	}
	e, err := decimal.NewFromFloat64(f)
	if err != nil {
		return decimal.Decimal{}, outOfRangeError("", err)
	}
	return e, nil
}
