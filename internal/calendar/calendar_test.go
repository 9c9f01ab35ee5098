package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{2100, false},
		{2400, true},
		{2016, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDayOfYearToDate(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		dayOfYear int
		want      time.Time
		wantErr   bool
	}{
		{name: "first day", year: 2024, dayOfYear: 1, want: date(2024, time.January, 1)},
		{name: "leap day", year: 2024, dayOfYear: 60, want: date(2024, time.February, 29)},
		{name: "day 60 in non-leap year", year: 2023, dayOfYear: 60, want: date(2023, time.March, 1)},
		{name: "last day of leap year", year: 2024, dayOfYear: 366, want: date(2024, time.December, 31)},
		{name: "mid-year in leap year", year: 2024, dayOfYear: 179, want: date(2024, time.June, 27)},
		{name: "day 366 in non-leap year", year: 2023, dayOfYear: 366, wantErr: true},
		{name: "day zero", year: 2024, dayOfYear: 0, wantErr: true},
		{name: "day 400", year: 2024, dayOfYear: 400, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayOfYearToDate(tt.year, tt.dayOfYear)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayOfYearRoundTrip(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		for d := 1; d <= DaysInYear(year); d++ {
			got, err := DayOfYearToDate(year, d)
			require.NoError(t, err)
			assert.Equal(t, d, DayOfYear(got), "year %d day %d", year, d)
		}
	}
}

func TestResolveTwoDigitYear(t *testing.T) {
	tests := []struct {
		name          string
		twoDigit      int
		referenceYear int
		wantYear      int
		wantAmbiguous bool
	}{
		{name: "recent past year", twoDigit: 24, referenceYear: 2025, wantYear: 2024},
		{name: "century rollover", twoDigit: 99, referenceYear: 2025, wantYear: 1999},
		{name: "next year kept in current century", twoDigit: 26, referenceYear: 2025, wantYear: 2026, wantAmbiguous: true},
		{name: "just past tolerance flips century", twoDigit: 27, referenceYear: 2025, wantYear: 1927, wantAmbiguous: true},
		{name: "reference year itself", twoDigit: 25, referenceYear: 2025, wantYear: 2025, wantAmbiguous: true},
		{name: "zero", twoDigit: 0, referenceYear: 2025, wantYear: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, ambiguous := ResolveTwoDigitYear(tt.twoDigit, tt.referenceYear)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantAmbiguous, ambiguous)
		})
	}
}

func TestAddYears(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		years int
		want  time.Time
	}{
		{name: "plain date", start: date(2023, time.March, 15), years: 3, want: date(2026, time.March, 15)},
		{name: "leap day clamps in non-leap target", start: date(2024, time.February, 29), years: 3, want: date(2027, time.February, 28)},
		{name: "leap day survives in leap target", start: date(2024, time.February, 29), years: 4, want: date(2028, time.February, 29)},
		{name: "feb 28 unaffected", start: date(2024, time.February, 28), years: 3, want: date(2027, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddYears(tt.start, tt.years))
		})
	}
}

func TestWithinProductionWindow(t *testing.T) {
	ref := date(2025, time.June, 15)

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{name: "before floor", d: date(2014, time.December, 31), want: false},
		{name: "floor itself", d: date(2015, time.January, 1), want: true},
		{name: "reference date", d: ref, want: true},
		{name: "exactly 90 days out", d: date(2025, time.September, 13), want: true},
		{name: "91 days out", d: date(2025, time.September, 14), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinProductionWindow(tt.d, ref))
		})
	}
}

func TestWithinExpiryWindow(t *testing.T) {
	ref := date(2025, time.June, 15)

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{name: "before floor", d: date(2014, time.June, 1), want: false},
		{name: "three years out", d: date(2028, time.June, 15), want: true},
		{name: "past three years", d: date(2028, time.June, 16), want: false},
		{name: "typical expiry", d: date(2027, time.January, 9), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinExpiryWindow(tt.d, ref))
		})
	}
}

func TestClocks(t *testing.T) {
	pinned := date(2025, time.June, 15)
	assert.Equal(t, pinned, Fixed(pinned).Now())

	now := SystemClock{}.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, 0, now.Hour())
}
