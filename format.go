package linechart

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// conciseSuffixes are the thousands-group suffixes of the concise
// number form.
var conciseSuffixes = [4]string{"", "K", "M", "B"}

// A Formatter turns axis or tooltip numbers into labels. The zero
// Formatter is not usable; construct with NewFormatter.
type Formatter struct {
	Kind DataKind

	// Concise selects the short form used for tick labels: K/M/B
	// suffixes for numbers. The long form groups thousands and
	// keeps more digits.
	Concise bool

	// Digits is the number of significant digits of the
	// exponential fallback (and the decimals of the long form).
	Digits int

	// Range, when set, is the full data interval of the axis; a
	// range reaching beyond +-1e12 switches the concise form to
	// exponential notation for every label.
	Range Interval

	// Layout overrides the date/datetime layout.
	Layout string

	// Location is the timezone of date labels. Defaults to UTC.
	Location *time.Location
}

// NewFormatter returns a Formatter for the given axis kind.
func NewFormatter(kind DataKind, concise bool) Formatter {
	f := Formatter{Kind: kind, Concise: concise, Digits: 3, Location: time.UTC}
	switch kind {
	case Date:
		f.Layout = "Jan 02, 2006"
	case DateTime:
		f.Layout = "Jan 02, 2006 15:04:05"
	}
	return f
}

// Format renders one value as a label. Date and datetime coordinates
// are epoch milliseconds.
func (f Formatter) Format(v float64) string {
	switch f.Kind {
	case Date, DateTime:
		ms := int64(v)
		t := time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
		loc := f.Location
		if loc == nil {
			loc = time.UTC
		}
		return t.In(loc).Format(f.Layout)
	}
	if f.Concise {
		return f.concise(v)
	}
	return f.long(v)
}

func (f Formatter) long(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	if abs > 1e12 || abs < 1e-3 {
		return fmt.Sprintf("%.*e", f.Digits-1, v)
	}
	return humanize.CommafWithDigits(v, f.Digits-1)
}

func (f Formatter) concise(v float64) string {
	if f.Range.Min < -1e12 || f.Range.Max > 1e12 {
		return fmt.Sprintf("%.2e", v)
	}
	abs := v
	sign := 1.0
	if abs < 0 {
		abs = -abs
		sign = -1
	}
	if abs < 1e-12 {
		return fmt.Sprintf("%.2e", v)
	}
	suffix := 0
	for abs >= 1000 && suffix < len(conciseSuffixes)-1 {
		suffix++
		abs *= 0.001
	}
	switch {
	case abs < 10:
		return fmt.Sprintf("%.2f%s", abs*sign, conciseSuffixes[suffix])
	case abs < 100:
		return fmt.Sprintf("%.1f%s", abs*sign, conciseSuffixes[suffix])
	default:
		return fmt.Sprintf("%.0f%s", abs*sign, conciseSuffixes[suffix])
	}
}

// FormatAll renders every value of vs.
func (f Formatter) FormatAll(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = f.Format(v)
	}
	return out
}

// MaxWidth returns the widest label, in runes, that vs formats to.
// Layout consumers use it to reserve tick and tooltip column space.
func (f Formatter) MaxWidth(vs []float64) int {
	max := 0
	for _, v := range vs {
		if n := len([]rune(f.Format(v))); n > max {
			max = n
		}
	}
	return max
}
