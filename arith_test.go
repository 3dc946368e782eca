package money

import (
	"errors"
	"math"
	"testing"

	"github.com/govalues/decimal"
)

func TestMoney_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want Money
		}{
			{MustNew(100, USD), MustNew(50, USD), MustNew(150, USD)},
			{MustNew(-1, USD), MustNew(1, USD), MustNew(0, USD)},
			{MustNew(1025, JPY), MustNew(-25, JPY), MustNew(1000, JPY)},
			{MustNew(math.MaxInt64, USD), MustNew(0, USD), MustNew(math.MaxInt64, USD)},
			{MustNew(math.MaxInt64, USD), MustNew(-math.MaxInt64, USD), MustNew(0, USD)},
			{Money{}, Money{}, Money{}},
		}
		for _, tt := range tests {
			got, err := tt.a.Add(tt.b)
			if err != nil {
				t.Errorf("%q.Add(%q) failed: %v", tt.a, tt.b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Add(%q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b Money
			want error
		}{
			"currency 1": {MustNew(100, USD), MustNew(100, EUR), ErrIncompatibleCurrencies},
			"currency 2": {MustNew(0, USD), Money{}, ErrIncompatibleCurrencies},
			"currency 3": {MustNew(100, USD), MustNew(100, AUD), ErrIncompatibleCurrencies},
			"overflow 1": {MustNew(math.MaxInt64, USD), MustNew(1, USD), ErrOverflow},
			"overflow 2": {MustNew(-math.MaxInt64, USD), MustNew(-1, USD), ErrOverflow},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := tt.a.Add(tt.b)
				if !errors.Is(err, tt.want) {
					t.Errorf("%q.Add(%q) = %v, want %v", tt.a, tt.b, err, tt.want)
				}
			})
		}
	})
}

func TestMoney_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want Money
		}{
			{MustNew(150, USD), MustNew(50, USD), MustNew(100, USD)},
			{MustNew(50, USD), MustNew(150, USD), MustNew(-100, USD)},
			{MustNew(0, JPY), MustNew(math.MaxInt64, JPY), MustNew(-math.MaxInt64, JPY)},
			{MustNew(-math.MaxInt64, JPY), MustNew(-math.MaxInt64, JPY), MustNew(0, JPY)},
		}
		for _, tt := range tests {
			got, err := tt.a.Sub(tt.b)
			if err != nil {
				t.Errorf("%q.Sub(%q) failed: %v", tt.a, tt.b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Sub(%q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b Money
			want error
		}{
			"currency 1": {MustNew(100, USD), MustNew(100, EUR), ErrIncompatibleCurrencies},
			"overflow 1": {MustNew(-math.MaxInt64, USD), MustNew(1, USD), ErrOverflow},
			"overflow 2": {MustNew(math.MaxInt64, USD), MustNew(-1, USD), ErrOverflow},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := tt.a.Sub(tt.b)
				if !errors.Is(err, tt.want) {
					t.Errorf("%q.Sub(%q) = %v, want %v", tt.a, tt.b, err, tt.want)
				}
			})
		}
	})
}

func TestMoney_AddSubInverse(t *testing.T) {
	units := []int64{0, 1, -1, 5, 1025, -1025, 123456789, math.MaxInt64 / 2, -math.MaxInt64 / 2}
	for _, x := range units {
		for _, y := range units {
			a, b := MustNew(x, EUR), MustNew(y, EUR)
			sum, err := a.Add(b)
			if err != nil {
				t.Errorf("%q.Add(%q) failed: %v", a, b, err)
				continue
			}
			got, err := sum.Sub(b)
			if err != nil {
				t.Errorf("%q.Sub(%q) failed: %v", sum, b, err)
				continue
			}
			if got != a {
				t.Errorf("%q.Add(%q).Sub(%q) = %q, want %q", a, b, b, got, a)
			}
		}
	}
}

func TestMoney_IncompatibleError(t *testing.T) {
	a, b := MustNew(100, USD), MustNew(100, EUR)
	ops := map[string]func() error{
		"Add": func() error { _, err := a.Add(b); return err },
		"Sub": func() error { _, err := a.Sub(b); return err },
		"Cmp": func() error { _, err := a.Cmp(b); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("%v(%q, %q) = %v, want *Error", name, a, b, err)
			}
			if e.Kind != KindIncompatibleCurrencies {
				t.Errorf("%v(%q, %q).Kind = %v, want %v", name, a, b, e.Kind, KindIncompatibleCurrencies)
			}
			if e.Curr != USD || e.Other != EUR {
				t.Errorf("%v(%q, %q) currencies = %v and %v, want %v and %v", name, a, b, e.Curr, e.Other, USD, EUR)
			}
		})
	}

	_, err := a.Add(b)
	want := "computing [USD 1.00 + EUR 1.00]: incompatible currencies USD and EUR"
	if err.Error() != want {
		t.Errorf("%q.Add(%q) = %q, want %q", a, b, err, want)
	}
}

func TestMoney_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    Money
			e    string
			want Money
		}{
			{MustNew(1000, USD), "2.5", MustNew(2500, USD)},
			{MustNew(3827932, USD), "0.25", MustNew(956983, USD)},
			{MustNew(100, USD), "0", MustNew(0, USD)},
			{MustNew(100, USD), "-1", MustNew(-100, USD)},
			{MustNew(100, USD), "1", MustNew(100, USD)},

			// Ties
			{MustNew(5, USD), "0.5", MustNew(2, USD)},
			{MustNew(7, USD), "0.5", MustNew(4, USD)},
			{MustNew(-5, USD), "0.5", MustNew(-2, USD)},
			{MustNew(-7, USD), "0.5", MustNew(-4, USD)},
			{MustNew(5, JPY), "0.5", MustNew(2, JPY)},
			{MustNew(15, JPY), "0.1", MustNew(2, JPY)},
			{MustNew(25, BHD), "0.1", MustNew(2, BHD)},
			{MustNew(3, USD), "0.5", MustNew(2, USD)},

			// Not ties
			{MustNew(1, USD), "0.49", MustNew(0, USD)},
			{MustNew(1, USD), "0.51", MustNew(1, USD)},
			{MustNew(1000, USD), "0.333", MustNew(333, USD)},

			// Products wider than 19 digits
			{MustNew(169089424364679181, USD), "0.594813965004488500", MustNew(100576750946681387, USD)},
			{MustNew(-169089424364679181, USD), "0.594813965004488500", MustNew(-100576750946681387, USD)},
			{MustNew(7811273694882624, USD), "0.572727895245006904", MustNew(4473734342452813, USD)},
			{MustNew(2921490217120034, USD), "0.844944861933735987", MustNew(2468498148145247, USD)},
			{MustNew(7349052848396716, USD), "0.539647563221605054", MustNew(3965898461624083, USD)},
			{MustNew(4062697656324528, USD), "0.790121084616610241", MustNew(3210023078684497, USD)},
			{MustNew(1_000_000_000_000_000_000, JPY), "0.1234567890123456789", MustNew(123456789012345679, JPY)},
			{MustNew(9_000_000_000_000_000_001, JPY), "0.5", MustNew(4_500_000_000_000_000_000, JPY)},
			{MustNew(9_000_000_000_000_000_003, JPY), "0.5", MustNew(4_500_000_000_000_000_002, JPY)},
		}
		for _, tt := range tests {
			e := decimal.MustParse(tt.e)
			got, err := tt.m.Mul(e)
			if err != nil {
				t.Errorf("%q.Mul(%v) failed: %v", tt.m, e, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Mul(%v) = %q, want %q", tt.m, e, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			m Money
			e string
		}{
			"overflow 1": {MustNew(math.MaxInt64, JPY), "2"},
			"overflow 2": {MustNew(-math.MaxInt64, JPY), "1.5"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				e := decimal.MustParse(tt.e)
				_, err := tt.m.Mul(e)
				if !errors.Is(err, ErrOverflow) {
					t.Errorf("%q.Mul(%v) = %v, want %v", tt.m, e, err, ErrOverflow)
				}
			})
		}
	})
}

func TestMoney_MulFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    Money
			f    float64
			want Money
		}{
			{MustNew(3827932, USD), 0.25, MustNew(956983, USD)},
			{MustNew(1000, USD), 2.5, MustNew(2500, USD)},
			{MustNew(5, USD), 0.5, MustNew(2, USD)},
			{MustNew(100, USD), 1.1, MustNew(110, USD)},
			{MustNew(100, USD), 0.07, MustNew(7, USD)},
		}
		for _, tt := range tests {
			got, err := tt.m.MulFloat64(tt.f)
			if err != nil {
				t.Errorf("%q.MulFloat64(%v) failed: %v", tt.m, tt.f, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.MulFloat64(%v) = %q, want %q", tt.m, tt.f, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			f    float64
			want error
		}{
			"special 1":  {math.NaN(), ErrOutOfRange},
			"special 2":  {math.Inf(1), ErrOutOfRange},
			"special 3":  {math.Inf(-1), ErrOutOfRange},
			"overflow 1": {1e10, ErrOverflow},
		}
		m := MustNew(math.MaxInt64, JPY)
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := m.MulFloat64(tt.f)
				if !errors.Is(err, tt.want) {
					t.Errorf("%q.MulFloat64(%v) = %v, want %v", m, tt.f, err, tt.want)
				}
			})
		}
	})
}

func TestMoney_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    Money
			e    string
			want Money
		}{
			{MustNew(100, USD), "5", MustNew(20, USD)},
			{MustNew(1000, USD), "4", MustNew(250, USD)},
			{MustNew(100, USD), "3", MustNew(33, USD)},
			{MustNew(200, USD), "3", MustNew(67, USD)},
			{MustNew(1, USD), "0.5", MustNew(2, USD)},
			{MustNew(100, USD), "-1", MustNew(-100, USD)},
			{MustNew(0, USD), "7", MustNew(0, USD)},

			// Ties
			{MustNew(5, USD), "2", MustNew(2, USD)},
			{MustNew(7, USD), "2", MustNew(4, USD)},
			{MustNew(-5, USD), "2", MustNew(-2, USD)},
			{MustNew(-7, USD), "2", MustNew(-4, USD)},
			{MustNew(5, USD), "-2", MustNew(-2, USD)},
			{MustNew(7, USD), "-2", MustNew(-4, USD)},
			{MustNew(10, JPY), "4", MustNew(2, JPY)},
			{MustNew(14, JPY), "4", MustNew(4, JPY)},
		}
		for _, tt := range tests {
			e := decimal.MustParse(tt.e)
			got, err := tt.m.Quo(e)
			if err != nil {
				t.Errorf("%q.Quo(%v) failed: %v", tt.m, e, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Quo(%v) = %q, want %q", tt.m, e, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			m    Money
			e    string
			want error
		}{
			"zero 1":     {MustNew(100, USD), "0", ErrDivisionByZero},
			"zero 2":     {MustNew(0, USD), "0.00", ErrDivisionByZero},
			"overflow 1": {MustNew(math.MaxInt64, JPY), "0.5", ErrOverflow},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				e := decimal.MustParse(tt.e)
				_, err := tt.m.Quo(e)
				if !errors.Is(err, tt.want) {
					t.Errorf("%q.Quo(%v) = %v, want %v", tt.m, e, err, tt.want)
				}
			})
		}
	})
}

func TestMoney_QuoFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    Money
			f    float64
			want Money
		}{
			{MustNew(100, USD), 5, MustNew(20, USD)},
			{MustNew(1000, USD), 4, MustNew(250, USD)},
			{MustNew(5, USD), 2, MustNew(2, USD)},
			{MustNew(1, USD), 0.5, MustNew(2, USD)},
		}
		for _, tt := range tests {
			got, err := tt.m.QuoFloat64(tt.f)
			if err != nil {
				t.Errorf("%q.QuoFloat64(%v) failed: %v", tt.m, tt.f, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.QuoFloat64(%v) = %q, want %q", tt.m, tt.f, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			f    float64
			want error
		}{
			"zero 1":    {0, ErrDivisionByZero},
			"zero 2":    {math.Copysign(0, -1), ErrDivisionByZero},
			"special 1": {math.NaN(), ErrOutOfRange},
			"special 2": {math.Inf(1), ErrOutOfRange},
		}
		m := MustNew(100, USD)
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := m.QuoFloat64(tt.f)
				if !errors.Is(err, tt.want) {
					t.Errorf("%q.QuoFloat64(%v) = %v, want %v", m, tt.f, err, tt.want)
				}
			})
		}
	})
}

func TestMoney_Percent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    Money
			p    string
			want Money
		}{
			{MustNew(100, USD), "50", MustNew(50, USD)},
			{MustNew(1000, USD), "33", MustNew(330, USD)},
			{MustNew(1000, USD), "12.5", MustNew(125, USD)},
			{MustNew(1000, USD), "0", MustNew(0, USD)},
			{MustNew(1000, USD), "100", MustNew(1000, USD)},
			{MustNew(-1000, USD), "10", MustNew(-100, USD)},
			{MustNew(1025, JPY), "10", MustNew(102, JPY)},

			// Ties
			{MustNew(5, USD), "50", MustNew(2, USD)},
			{MustNew(7, USD), "50", MustNew(4, USD)},
			{MustNew(25, JPY), "10", MustNew(2, JPY)},
			{MustNew(35, JPY), "10", MustNew(4, JPY)},

			// Products wider than 19 digits
			{MustNew(169089424364679181, USD), "59.48139650044885", MustNew(100576750946681387, USD)},
			{MustNew(-169089424364679181, USD), "59.48139650044885", MustNew(-100576750946681387, USD)},
			{MustNew(math.MaxInt64, USD), "100", MustNew(math.MaxInt64, USD)},
			{MustNew(math.MaxInt64, USD), "50.000000000000000", MustNew(4611686018427387904, USD)},
		}
		for _, tt := range tests {
			p := decimal.MustParse(tt.p)
			got, err := tt.m.Percent(p)
			if err != nil {
				t.Errorf("%q.Percent(%v) failed: %v", tt.m, p, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Percent(%v) = %q, want %q", tt.m, p, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"range 1": "101",
			"range 2": "100.01",
			"range 3": "-1",
			"range 4": "-0.01",
			"scale 1": "0.000000000000000001",
		}
		m := MustNew(1000, USD)
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				p := decimal.MustParse(tt)
				_, err := m.Percent(p)
				if !errors.Is(err, ErrOutOfRange) {
					t.Errorf("%q.Percent(%v) = %v, want %v", m, p, err, ErrOutOfRange)
				}
			})
		}
	})
}

func TestMoney_PercentFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    Money
			p    float64
			want Money
		}{
			{MustNew(100, USD), 50, MustNew(50, USD)},
			{MustNew(1000, USD), 33, MustNew(330, USD)},
			{MustNew(1000, USD), 12.5, MustNew(125, USD)},
			{MustNew(5, USD), 50, MustNew(2, USD)},
		}
		for _, tt := range tests {
			got, err := tt.m.PercentFloat64(tt.p)
			if err != nil {
				t.Errorf("%q.PercentFloat64(%v) failed: %v", tt.m, tt.p, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.PercentFloat64(%v) = %q, want %q", tt.m, tt.p, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]float64{
			"range 1":   101,
			"range 2":   -1,
			"special 1": math.NaN(),
			"special 2": math.Inf(1),
		}
		m := MustNew(1000, USD)
		for name, p := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := m.PercentFloat64(p)
				if !errors.Is(err, ErrOutOfRange) {
					t.Errorf("%q.PercentFloat64(%v) = %v, want %v", m, p, err, ErrOutOfRange)
				}
			})
		}
	})
}

func TestMoney_Split(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m     Money
			parts int
			want  []int64
		}{
			{MustNew(1000, USD), 3, []int64{334, 333, 333}},
			{MustNew(-1000, USD), 3, []int64{-334, -333, -333}},
			{MustNew(101, USD), 4, []int64{26, 25, 25, 25}},
			{MustNew(2, USD), 4, []int64{1, 1, 0, 0}},
			{MustNew(-2, USD), 4, []int64{-1, -1, 0, 0}},
			{MustNew(5, JPY), 1, []int64{5}},
			{MustNew(0, USD), 2, []int64{0, 0}},
		}
		for _, tt := range tests {
			got, err := tt.m.Split(tt.parts)
			if err != nil {
				t.Errorf("%q.Split(%v) failed: %v", tt.m, tt.parts, err)
				continue
			}
			if len(got) != len(tt.want) {
				t.Errorf("len(%q.Split(%v)) = %v, want %v", tt.m, tt.parts, len(got), len(tt.want))
				continue
			}
			var sum int64
			for i, p := range got {
				if p.Curr() != tt.m.Curr() {
					t.Errorf("%q.Split(%v)[%v].Curr() = %v, want %v", tt.m, tt.parts, i, p.Curr(), tt.m.Curr())
				}
				if p.Units() != tt.want[i] {
					t.Errorf("%q.Split(%v)[%v] = %q, want %v units", tt.m, tt.parts, i, p, tt.want[i])
				}
				sum += p.Units()
			}
			if sum != tt.m.Units() {
				t.Errorf("%q.Split(%v) sums up to %v units, want %v", tt.m, tt.parts, sum, tt.m.Units())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []int{0, -1}
		m := MustNew(1000, USD)
		for _, parts := range tests {
			_, err := m.Split(parts)
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("%q.Split(%v) = %v, want %v", m, parts, err, ErrOutOfRange)
			}
		}
	})
}
