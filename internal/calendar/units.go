// Package calendar converts elapsed simulation seconds into civil-time
// breakdowns under fixed and user-configurable calendars.
//
// Every function in this package is pure: it reads only its arguments and
// returns a fresh value, so it is safe to call from any goroutine.
package calendar

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors.
var (
	ErrInvalidUnitRatio  = errors.New("unit ratio must be a finite positive number")
	ErrElapsedOutOfRange = errors.New("elapsed time is not representable")
)

// Units holds the five ratios that define a calendar's structure.
type Units struct {
	SecondsPerMinute float64 `toml:"seconds_per_minute" yaml:"seconds_per_minute"`
	MinutesPerHour   float64 `toml:"minutes_per_hour" yaml:"minutes_per_hour"`
	HoursPerDay      float64 `toml:"hours_per_day" yaml:"hours_per_day"`
	DaysPerMonth     float64 `toml:"days_per_month" yaml:"days_per_month"`
	MonthsPerYear    float64 `toml:"months_per_year" yaml:"months_per_year"`
}

// The derived ratios are computed in float64 one step at a time, not as
// exact constant expressions, so they match the reference values bit for bit.
var (
	earthDaysPerMonth = 365.25 / earthMonthsPerYear

	siderealHoursPerDay   float64 = 6.0
	siderealDaysPerMonth          = 38.6 / siderealHoursPerDay
	siderealMonthsPerYear         = 2556.50 / siderealHoursPerDay / siderealDaysPerMonth
)

const earthMonthsPerYear float64 = 12.0

// EarthUnits is the simulation-native calendar: 60 s/min, 60 min/h,
// 24 h/day, 365.25/12 days/month and 12 months/year.
var EarthUnits = Units{
	SecondsPerMinute: 60.0,
	MinutesPerHour:   60.0,
	HoursPerDay:      24.0,
	DaysPerMonth:     earthDaysPerMonth,
	MonthsPerYear:    earthMonthsPerYear,
}

// SiderealUnits is the fixed alternate calendar: 6 hour days, a 38.6 hour
// month and a 2556.50 hour year.
var SiderealUnits = Units{
	SecondsPerMinute: 60.0,
	MinutesPerHour:   60.0,
	HoursPerDay:      siderealHoursPerDay,
	DaysPerMonth:     siderealDaysPerMonth,
	MonthsPerYear:    siderealMonthsPerYear,
}

// NewUnits builds a validated Units value.
func NewUnits(secondsPerMinute, minutesPerHour, hoursPerDay, daysPerMonth, monthsPerYear float64) (Units, error) {
	u := Units{
		SecondsPerMinute: secondsPerMinute,
		MinutesPerHour:   minutesPerHour,
		HoursPerDay:      hoursPerDay,
		DaysPerMonth:     daysPerMonth,
		MonthsPerYear:    monthsPerYear,
	}
	if err := u.Validate(); err != nil {
		return Units{}, err
	}
	return u, nil
}

// Validate reports the first ratio that is zero, negative or not finite.
func (u Units) Validate() error {
	for _, f := range u.fields() {
		if !validRatio(f.value) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidUnitRatio, f.name, f.value)
		}
	}
	return nil
}

// Validate is a convenience wrapper around Units.Validate.
func Validate(u Units) error {
	return u.Validate()
}

type unitField struct {
	name  string
	value float64
}

func (u Units) fields() []unitField {
	return []unitField{
		{name: "seconds_per_minute", value: u.SecondsPerMinute},
		{name: "minutes_per_hour", value: u.MinutesPerHour},
		{name: "hours_per_day", value: u.HoursPerDay},
		{name: "days_per_month", value: u.DaysPerMonth},
		{name: "months_per_year", value: u.MonthsPerYear},
	}
}

func validRatio(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
