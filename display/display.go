// Package display renders money for humans using the number conventions of
// a locale.
//
// It only reads the amount, the currency code, scale and symbol of a
// [money.Money] value; all arithmetic stays in package money.
package display

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/colbert-go/money"
)

// Placement tells where the currency symbol goes relative to the number.
type Placement uint8

const (
	// Prefix puts the symbol before the number: "$10.25".
	Prefix Placement = iota
	// Suffix puts the symbol after the number, separated by a no-break space: "10,25 €".
	Suffix
)

// nbsp separates a suffixed symbol from the number.
const nbsp = "\u00a0"

// Option configures a [Formatter].
type Option func(*config)

type config struct {
	placement  Placement
	code       bool
	fixedScale bool
}

// WithPlacement sets where the symbol goes. The default is [Prefix].
func WithPlacement(p Placement) Option {
	return func(c *config) {
		c.placement = p
	}
}

// WithCode makes the formatter print the ISO 4217 code instead of the symbol.
func WithCode() Option {
	return func(c *config) {
		c.code = true
	}
}

// WithFixedScale makes the formatter always print as many fractional digits as
// the currency scale. By default trailing zeros are dropped, so 10.20 US dollars
// is printed as 10.2 and 10.00 as 10.
func WithFixedScale() Option {
	return func(c *config) {
		c.fixedScale = true
	}
}

// Formatter formats money for one locale.
// A Formatter is safe for concurrent use by multiple goroutines.
type Formatter struct {
	tag language.Tag
	cfg config
}

// New returns a formatter for the given locale.
func New(tag language.Tag, opts ...Option) *Formatter {
	f := &Formatter{tag: tag}
	for _, opt := range opts {
		opt(&f.cfg)
	}
	return f
}

// Tag returns the locale of the formatter.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Format returns the money as a string using the separators of the locale.
func (f *Formatter) Format(m money.Money) string {
	c := m.Curr()
	// message.Printer keeps per-call state, so one is created per call.
	p := message.NewPrinter(f.tag)

	var sign string
	if m.IsNeg() {
		sign = "-"
	}
	digits := f.digits(p, m.Abs())

	sym := c.Symbol()
	if f.cfg.code {
		sym = c.Code()
	}
	if f.cfg.placement == Suffix {
		return sign + digits + nbsp + sym
	}
	// The sign goes in front of a prefixed symbol: "-$10.25".
	if f.cfg.code {
		return sign + sym + nbsp + digits
	}
	return sign + sym + digits
}

// digits formats a non-negative amount without going through float64:
// the whole part is printed as an integer with grouping, the fraction as a
// zero-padded integer after the decimal separator of the locale.
func (f *Formatter) digits(p *message.Printer, m money.Money) string {
	whole, frac := m.Parts()
	s := p.Sprint(number.Decimal(whole))

	n := m.Curr().Scale()
	if !f.cfg.fixedScale {
		for n > 0 && frac%10 == 0 {
			frac /= 10
			n--
		}
	}
	if n == 0 {
		return s
	}
	return s + separator(p) + p.Sprint(number.Decimal(frac, number.MinIntegerDigits(n), number.NoSeparator()))
}

// separator returns the decimal separator of the printer's locale.
func separator(p *message.Printer) string {
	r := []rune(p.Sprint(number.Decimal(1.5)))
	if len(r) < 3 {
		return "."
	}
	return string(r[1 : len(r)-1])
}

// Format parses a BCP 47 locale such as "fr-FR" and formats the money for it.
func Format(m money.Money, locale string, opts ...Option) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return New(tag, opts...).Format(m), nil
}
