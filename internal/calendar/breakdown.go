package calendar

import (
	"fmt"
	"math"
)

// Breakdown is a civil-time tuple. Values returned by Convert are dated:
// years, months and days are 1-based and hours, minutes and seconds are
// 0-based. Values returned by Decompose are plain 0-based counts.
type Breakdown struct {
	Years   int64
	Months  int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// int64 conversion is only defined for values strictly inside this range.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// Decompose truncates seconds toward zero and splits the count into
// seconds, minutes, hours, days, months and years, in that order.
//
// Each quotient is computed as int64(count / ratio) and each remainder as
// count - int64(quotient * ratio), so fractional ratios lose the same
// partial units at every step as the reference clock did.
func Decompose(seconds float64, u Units) (Breakdown, error) {
	if err := u.Validate(); err != nil {
		return Breakdown{}, err
	}

	s, ok := truncate(seconds)
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: %v", ErrElapsedOutOfRange, seconds)
	}

	var b Breakdown
	var err error
	if b.Minutes, s, err = split(s, u.SecondsPerMinute); err != nil {
		return Breakdown{}, err
	}
	b.Seconds = s
	if b.Hours, b.Minutes, err = split(b.Minutes, u.MinutesPerHour); err != nil {
		return Breakdown{}, err
	}
	if b.Days, b.Hours, err = split(b.Hours, u.HoursPerDay); err != nil {
		return Breakdown{}, err
	}
	if b.Months, b.Days, err = split(b.Days, u.DaysPerMonth); err != nil {
		return Breakdown{}, err
	}
	if b.Years, b.Months, err = split(b.Months, u.MonthsPerYear); err != nil {
		return Breakdown{}, err
	}

	return b, nil
}

// Convert decomposes elapsed+offset and applies the epoch: the simulated
// universe starts on year 1, month 1, day 1 at 00:00:00.
func Convert(elapsed, offset float64, u Units) (Breakdown, error) {
	b, err := Decompose(elapsed+offset, u)
	if err != nil {
		return Breakdown{}, err
	}
	return b.FromEpoch(), nil
}

// FromEpoch returns b with years, months and days shifted to 1-based.
func (b Breakdown) FromEpoch() Breakdown {
	b.Years++
	b.Months++
	b.Days++
	return b
}

// String renders b as YY:MM:DD HH:MM:SS. Fields are zero-padded to two
// digits and never truncated.
func (b Breakdown) String() string {
	return fmt.Sprintf("%02d:%02d:%02d %02d:%02d:%02d",
		b.Years, b.Months, b.Days, b.Hours, b.Minutes, b.Seconds)
}

// compare orders breakdowns by years, then months, days, hours, minutes
// and seconds. It returns -1, 0 or +1.
func (b Breakdown) compare(other Breakdown) int {
	left := [...]int64{b.Years, b.Months, b.Days, b.Hours, b.Minutes, b.Seconds}
	right := [...]int64{other.Years, other.Months, other.Days, other.Hours, other.Minutes, other.Seconds}
	for i := range left {
		switch {
		case left[i] < right[i]:
			return -1
		case left[i] > right[i]:
			return 1
		}
	}
	return 0
}

// split divides count by ratio, truncating toward zero, and returns the
// quotient and what is left of count.
func split(count int64, ratio float64) (quotient, remainder int64, err error) {
	q, ok := truncate(float64(count) / ratio)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d / %v", ErrElapsedOutOfRange, count, ratio)
	}
	used, ok := truncate(float64(q) * ratio)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d * %v", ErrElapsedOutOfRange, q, ratio)
	}
	return q, count - used, nil
}

// truncate converts v to int64 toward zero. It reports false for NaN,
// infinities and values outside the int64 range.
func truncate(v float64) (int64, bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	t := math.Trunc(v)
	if t < minInt64Float || t >= maxInt64Float {
		return 0, false
	}
	return int64(t), true
}
