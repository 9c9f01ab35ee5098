// Package calendar implements the date arithmetic underlying batch code
// decoding: leap years, Julian day-of-year conversion, two-digit year
// resolution, shelf-life addition, and validity windows.
package calendar

import (
	"fmt"
	"time"
)

// Window boundaries. Production dates before the floor predate every format
// still in circulation; the future tolerance covers codes printed slightly
// ahead of release.
var (
	windowFloor = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)
)

const (
	// FutureToleranceDays is how far past the reference date a production
	// date may fall before it is rejected outright.
	FutureToleranceDays = 90
	// ShelfLifeYears is the fixed period between production and expiry.
	ShelfLifeYears = 3
)

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month of year,
// leap-aware for February.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

// DayOfYearToDate converts a Julian day-of-year to a calendar date by walking
// cumulative month lengths. It fails when dayOfYear is outside 1..365 (366
// for leap years).
func DayOfYearToDate(year, dayOfYear int) (time.Time, error) {
	if dayOfYear < 1 || dayOfYear > DaysInYear(year) {
		return time.Time{}, fmt.Errorf("day of year %d is invalid for year %d", dayOfYear, year)
	}

	month := 1
	remaining := dayOfYear
	for remaining > DaysInMonth(year, month) {
		remaining -= DaysInMonth(year, month)
		month++
	}
	return time.Date(year, time.Month(month), remaining, 0, 0, 0, 0, time.UTC), nil
}

// DayOfYear returns the Julian day-of-year for a date, the inverse of
// DayOfYearToDate.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// ResolveTwoDigitYear resolves a two-digit year against a reference year.
// Batch codes are never issued more than about a year into the future, so a
// two-digit year that would land beyond referenceYear+1 is assumed to belong
// to the previous century. The ambiguous flag reports that the resolved
// century sits within one year of that rollover boundary, where either
// reading is plausible.
func ResolveTwoDigitYear(twoDigit, referenceYear int) (int, bool) {
	year := 2000 + twoDigit
	if year > referenceYear+1 {
		year = 1900 + twoDigit
	}
	boundary := 2000 + twoDigit
	ambiguous := boundary >= referenceYear && boundary <= referenceYear+2
	return year, ambiguous
}

// AddYears adds exact calendar years to a date, preserving month and day.
// The single documented clamp: Feb 29 plus years landing in a non-leap year
// becomes Feb 28.
func AddYears(t time.Time, years int) time.Time {
	year := t.Year() + years
	day := t.Day()
	if t.Month() == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return time.Date(year, t.Month(), day, 0, 0, 0, 0, time.UTC)
}

// WithinProductionWindow reports whether a production date is acceptable:
// on or after 2015-01-01 and no more than 90 days past the reference date.
func WithinProductionWindow(d, reference time.Time) bool {
	ceiling := reference.AddDate(0, 0, FutureToleranceDays)
	return !d.Before(windowFloor) && !d.After(ceiling)
}

// WithinExpiryWindow reports whether an expiry date is acceptable:
// on or after 2015-01-01 and no more than the shelf life past the reference
// date.
func WithinExpiryWindow(d, reference time.Time) bool {
	ceiling := AddYears(reference, ShelfLifeYears)
	return !d.Before(windowFloor) && !d.After(ceiling)
}
