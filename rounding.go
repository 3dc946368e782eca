package money

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/govalues/decimal"
)

const (
	// noiseScale is the number of fractional digits a scaled float is snapped
	// to before the half-way test, absorbing binary representation error.
	noiseScale = 8
	// maxFloatScale is the largest scale accepted by [RoundHalfEvenFloat64].
	maxFloatScale = 18
)

// pow10 holds 10^0 through 10^18.
var pow10 = func() [maxFloatScale + 1]int64 {
	var p [maxFloatScale + 1]int64
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// RoundHalfEven returns d rounded to the given number of digits after the
// decimal point using [rounding half to even] (banker's rounding).
// The result always has exactly the requested number of fractional digits:
// values with fewer digits are zero-padded, so rounding 2.1 to 3 digits gives 2.100.
// A negative scale is treated as 0.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func RoundHalfEven(d decimal.Decimal, scale int) decimal.Decimal {
	scale = max(scale, 0)
	return d.Round(scale).Pad(scale)
}

// RoundHalfEvenFloat64 rounds a binary floating-point number to the given number
// of digits after the decimal point using rounding half to even.
//
// The float is first converted to the shortest decimal that represents it, so
// 2.135 is treated as exactly 2.135 and rounds to 2.14, not as the binary value
// 2.13499999999999978... that it is stored as.
// After scaling by 10^scale the value is snapped to 8 fractional digits, and a
// fraction that lands exactly on one half there is treated as a tie.
//
// RoundHalfEvenFloat64 returns an error if:
//   - f is NaN or an infinity;
//   - scale is negative or greater than 18;
//   - the scaled value does not fit into int64.
func RoundHalfEvenFloat64(f float64, scale int) (float64, error) {
	r, err := roundHalfEvenFloat64(f, scale)
	if err != nil {
		return 0, fmt.Errorf("rounding %v to %v digits: %w", f, scale, err)
	}
	return r, nil
}

func roundHalfEvenFloat64(f float64, scale int) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalidAmountError(fmt.Sprintf("special value %v", f), nil)
	}
	if scale < 0 || scale > maxFloatScale {
		return 0, outOfRangeError(fmt.Sprintf("scale must be between 0 and %v", maxFloatScale), nil)
	}
	d, err := decimal.NewFromFloat64(f)
	if err != nil {
		return 0, overflowError(err)
	}

	// Scaling
	m, err := decimal.New(pow10[scale], 0)
	if err != nil {
		return 0, overflowError(err)
	}
	d, err = d.Mul(m)
	if err != nil {
		return 0, overflowError(err)
	}

	// Noise and tie breaking
	d = d.Round(noiseScale)
	d = RoundHalfEven(d, 0)

	// Unscaling
	units, ok := minorUnits(d, 0)
	if !ok {
		return 0, overflowError(nil)
	}
	d, err = decimal.New(units, scale)
	if err != nil {
		return 0, overflowError(err)
	}
	r, ok := d.Float64()
	if !ok {
		return 0, overflowError(nil)
	}
	return r, nil
}

// quoHalfEven returns the integer quotient d / e rounded half to even.
// Unlike rounding the result of [decimal.Decimal.Quo], it never rounds twice:
// the tie is decided by comparing the exact remainder with the divisor.
func quoHalfEven(d, e decimal.Decimal) (decimal.Decimal, error) {
	if e.IsZero() {
		return decimal.Decimal{}, divisionByZeroError()
	}
	q, r, err := d.QuoRem(e)
	if err != nil {
		return decimal.Decimal{}, overflowError(err)
	}
	q = q.Trunc(0)
	if r.IsZero() {
		return q, nil
	}

	// Doubled remainder against divisor
	r, err = r.Add(r)
	if err != nil {
		return decimal.Decimal{}, overflowError(err)
	}
	switch c := r.CmpAbs(e); {
	case c < 0:
		return q, nil
	case c == 0 && q.Coef()%2 == 0:
		return q, nil
	}

	// Away from zero
	one := decimal.MustNew(1, 0)
	if d.Sign() != e.Sign() {
		q, err = q.Sub(one)
	} else {
		q, err = q.Add(one)
	}
	if err != nil {
		return decimal.Decimal{}, overflowError(err)
	}
	return q, nil
}

// maxMulScale is the largest power of ten that fits into uint64.
const maxMulScale = 19

// mulHalfEven returns units * coef / 10^scale rounded half to even, negated if
// neg is true. The product is kept in 128 bits, so the tie is decided on the
// exact remainder at any magnitude.
// It returns false if scale is greater than 19 or the result is outside
// [-math.MaxInt64, math.MaxInt64].
func mulHalfEven(units int64, coef uint64, neg bool, scale int) (int64, bool) {
	if scale < 0 || scale > maxMulScale {
		return 0, false
	}
	y := uint64(1)
	for range scale {
		y *= 10
	}
	x := uint64(units)
	if units < 0 {
		x = uint64(-units)
		neg = !neg
	}
	hi, lo := bits.Mul64(x, coef)
	if hi >= y {
		return 0, false
	}
	q, r := bits.Div64(hi, lo, y)
	if q > math.MaxInt64 {
		return 0, false
	}

	// Remainder against the other half of the divisor
	if r > y-r || (r == y-r && q%2 == 1) {
		q++
	}
	if q > math.MaxInt64 {
		return 0, false
	}
	if neg {
		return -int64(q), true
	}
	return int64(q), true
}

// minorUnits converts a decimal with at most the given number of fractional digits
// to an integer count of 10^-scale units.
// It returns false if the result is outside [-math.MaxInt64, math.MaxInt64].
func minorUnits(d decimal.Decimal, scale int) (int64, bool) {
	d = d.Round(scale)
	if d.Scale() < scale {
		d = d.Pad(scale)
		if d.Scale() < scale {
			return 0, false
		}
	}
	u := d.Coef()
	if u > math.MaxInt64 {
		return 0, false
	}
	if d.IsNeg() {
		return -int64(u), true
	}
	return int64(u), true
}
