package pattern

import (
	"strconv"
	"time"

	"github.com/DylanJ17/batchcode/internal/calendar"
	"github.com/DylanJ17/batchcode/internal/model"
)

// atoi converts a digit-only segment. Segmentation guarantees the input is
// numeric, so conversion cannot fail.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// julianCandidate resolves a Julian day within a year, or reports failure.
func julianCandidate(year, dayOfYear int) (time.Time, bool) {
	d, err := calendar.DayOfYearToDate(year, dayOfYear)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// julianLeapVerified reports whether resolving the given Julian day depended
// on correct leap-year handling: from day 60 onward a leap year shifts every
// date by one.
func julianLeapVerified(year, dayOfYear int) bool {
	return calendar.IsLeapYear(year) && dayOfYear >= 60
}

// directDate builds a calendar date from explicit day/month components,
// failing on impossible months or days.
func directDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > calendar.DaysInMonth(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// matchYDDDBB decodes a single year digit, a Julian day, and a batch number.
// The year digit is resolved against the current decade, rolling back ten
// years when it would land in the future.
func matchYDDDBB(segs [][]string, ref time.Time) []model.Candidate {
	var out []model.Candidate
	for _, seg := range segs {
		year := (ref.Year()/10)*10 + atoi(seg[0])
		if year > ref.Year() {
			year -= 10
		}
		ddd := atoi(seg[1])
		prod, ok := julianCandidate(year, ddd)
		if !ok {
			continue
		}
		out = append(out, model.Candidate{
			Production:   prod,
			JulianDay:    ddd,
			Batch:        seg[2],
			LeapVerified: julianLeapVerified(year, ddd),
		})
	}
	return out
}

// matchPrefixYYMMSuffix decodes a letter prefix, a two-digit year, and a
// month. No day is encoded, so production defaults to the first of the month.
func matchPrefixYYMMSuffix(segs [][]string, ref time.Time) []model.Candidate {
	var out []model.Candidate
	for _, seg := range segs {
		month := atoi(seg[2])
		if month < 1 || month > 12 {
			continue
		}
		year, ambiguous := calendar.ResolveTwoDigitYear(atoi(seg[1]), ref.Year())
		out = append(out, model.Candidate{
			Production:    time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
			Prefix:        seg[0],
			Suffix:        seg[3],
			YearAmbiguous: ambiguous,
		})
	}
	return out
}

// matchJulianSuffix decodes a Julian day, a two-digit year, and a short
// numeric suffix.
func matchJulianSuffix(segs [][]string, ref time.Time) []model.Candidate {
	var out []model.Candidate
	for _, seg := range segs {
		year, ambiguous := calendar.ResolveTwoDigitYear(atoi(seg[1]), ref.Year())
		ddd := atoi(seg[0])
		prod, ok := julianCandidate(year, ddd)
		if !ok {
			continue
		}
		out = append(out, model.Candidate{
			Production:    prod,
			JulianDay:     ddd,
			Suffix:        seg[2],
			YearAmbiguous: ambiguous,
			LeapVerified:  julianLeapVerified(year, ddd),
		})
	}
	return out
}

// matchDDMMYYSuffix decodes day, month, and year groups of variable width
// followed by a numeric suffix. Every slicing that forms a real date becomes
// its own candidate; ambiguity between slicings is intrinsic to the format.
func matchDDMMYYSuffix(segs [][]string, ref time.Time) []model.Candidate {
	var out []model.Candidate
	for _, seg := range segs {
		year, ambiguous := calendar.ResolveTwoDigitYear(atoi(seg[2]), ref.Year())
		day, month := atoi(seg[0]), atoi(seg[1])
		prod, ok := directDate(year, month, day)
		if !ok {
			continue
		}
		out = append(out, model.Candidate{
			Production:    prod,
			Suffix:        seg[3],
			YearAmbiguous: ambiguous,
			LeapVerified:  month == 2 && day == 29,
		})
	}
	return out
}

// matchMixedAlpha decodes a digit run followed by a two-digit year and an
// alphabetic suffix. A three-digit run is a Julian day; a four-digit run is
// day and month. Five-digit runs have no known reading.
func matchMixedAlpha(segs [][]string, ref time.Time) []model.Candidate {
	var out []model.Candidate
	for _, seg := range segs {
		year, ambiguous := calendar.ResolveTwoDigitYear(atoi(seg[1]), ref.Year())
		lead := seg[0]
		switch len(lead) {
		case 3:
			ddd := atoi(lead)
			prod, ok := julianCandidate(year, ddd)
			if !ok {
				continue
			}
			out = append(out, model.Candidate{
				Production:    prod,
				JulianDay:     ddd,
				Suffix:        seg[2],
				YearAmbiguous: ambiguous,
				LeapVerified:  julianLeapVerified(year, ddd),
			})
		case 4:
			day, month := atoi(lead[:2]), atoi(lead[2:])
			prod, ok := directDate(year, month, day)
			if !ok {
				continue
			}
			out = append(out, model.Candidate{
				Production:    prod,
				Suffix:        seg[2],
				YearAmbiguous: ambiguous,
				LeapVerified:  month == 2 && day == 29,
			})
		}
	}
	return out
}

// matchDDMMYY decodes six digits as day, month, and year.
func matchDDMMYY(segs [][]string, ref time.Time) []model.Candidate {
	var out []model.Candidate
	for _, seg := range segs {
		year, ambiguous := calendar.ResolveTwoDigitYear(atoi(seg[2]), ref.Year())
		day, month := atoi(seg[0]), atoi(seg[1])
		prod, ok := directDate(year, month, day)
		if !ok {
			continue
		}
		out = append(out, model.Candidate{
			Production:    prod,
			YearAmbiguous: ambiguous,
			LeapVerified:  month == 2 && day == 29,
		})
	}
	return out
}

// matchLegacyDDDYYBB decodes seven digits as Julian day, year, and batch.
func matchLegacyDDDYYBB(segs [][]string, ref time.Time) []model.Candidate {
	var out []model.Candidate
	for _, seg := range segs {
		year, ambiguous := calendar.ResolveTwoDigitYear(atoi(seg[1]), ref.Year())
		ddd := atoi(seg[0])
		prod, ok := julianCandidate(year, ddd)
		if !ok {
			continue
		}
		out = append(out, model.Candidate{
			Production:    prod,
			JulianDay:     ddd,
			Batch:         seg[2],
			YearAmbiguous: ambiguous,
			LeapVerified:  julianLeapVerified(year, ddd),
		})
	}
	return out
}

// matchLegacyYYDDD decodes a two-digit year followed by a Julian day and an
// optional suffix.
func matchLegacyYYDDD(segs [][]string, ref time.Time) []model.Candidate {
	var out []model.Candidate
	for _, seg := range segs {
		year, ambiguous := calendar.ResolveTwoDigitYear(atoi(seg[0]), ref.Year())
		ddd := atoi(seg[1])
		prod, ok := julianCandidate(year, ddd)
		if !ok {
			continue
		}
		out = append(out, model.Candidate{
			Production:    prod,
			JulianDay:     ddd,
			Suffix:        seg[2],
			YearAmbiguous: ambiguous,
			LeapVerified:  julianLeapVerified(year, ddd),
		})
	}
	return out
}
