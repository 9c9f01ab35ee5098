package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/DylanJ17/batchcode/internal/model"
)

// DateFormat selects how calendar dates are rendered.
type DateFormat string

// Supported date display formats.
const (
	DateFormatUK DateFormat = "uk"
	DateFormatUS DateFormat = "us"
)

// ParseDateFormat validates a date format preference.
func ParseDateFormat(s string) (DateFormat, error) {
	switch DateFormat(strings.ToLower(s)) {
	case DateFormatUK:
		return DateFormatUK, nil
	case DateFormatUS:
		return DateFormatUS, nil
	default:
		return "", fmt.Errorf("invalid date format %q (want uk or us)", s)
	}
}

// FormatDate renders a date in the preferred regional layout.
func FormatDate(t time.Time, f DateFormat) string {
	if f == DateFormatUS {
		return t.Format("01/02/2006")
	}
	return t.Format("02/01/2006")
}

// ExpiryStatus describes how close an interpretation is to its expiry date.
type ExpiryStatus struct {
	Label string
	Days  int
	Style func(...string) string
}

// StatusForExpiry classifies an expiry date against the reference date.
func StatusForExpiry(expiry, reference time.Time) ExpiryStatus {
	days := int(expiry.Sub(reference).Hours() / 24)
	switch {
	case days < 0:
		return ExpiryStatus{Days: days, Label: fmt.Sprintf("Expired %d days ago", -days), Style: ErrorStyle.Render}
	case days <= 30:
		return ExpiryStatus{Days: days, Label: fmt.Sprintf("Expires in %d days (critical)", days), Style: ErrorStyle.Render}
	case days <= 90:
		return ExpiryStatus{Days: days, Label: fmt.Sprintf("Expires in %d days (soon)", days), Style: WarningStyle.Render}
	default:
		return ExpiryStatus{Days: days, Label: fmt.Sprintf("Expires in %d days", days), Style: SuccessStyle.Render}
	}
}

// RenderInterpretation renders one interpretation as a bordered card.
func RenderInterpretation(in model.Interpretation, reference time.Time, f DateFormat) string {
	var b strings.Builder

	tier := TierStyle(string(in.Tier)).Render(fmt.Sprintf("%s (%d%%)", in.Tier, in.Confidence))
	b.WriteString(fmt.Sprintf("%s  %s\n", BoldStyle.Render(in.Pattern), tier))
	b.WriteString(fmt.Sprintf("Production: %s\n", FormatDate(in.Production, f)))

	status := StatusForExpiry(in.Expiry, reference)
	b.WriteString(fmt.Sprintf("Expiry:     %s  %s\n", FormatDate(in.Expiry, f), status.Style(status.Label)))

	var details []string
	if in.Batch != "" {
		details = append(details, "Batch: "+in.Batch)
	}
	if in.Prefix != "" {
		details = append(details, "Prefix: "+in.Prefix)
	}
	if in.Suffix != "" {
		details = append(details, "Suffix: "+in.Suffix)
	}
	if in.JulianDay > 0 {
		details = append(details, fmt.Sprintf("Julian day: %d", in.JulianDay))
	}
	if len(details) > 0 {
		b.WriteString(SubtleStyle.Render(strings.Join(details, " | ")) + "\n")
	}
	for _, note := range in.Notes {
		b.WriteString(SubtleStyle.Render("• "+note) + "\n")
	}

	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderResult renders a complete analysis result, best interpretation first.
func RenderResult(code string, result model.AnalysisResult, reference time.Time, f DateFormat) string {
	var b strings.Builder

	if len(result) == 0 {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("No valid date patterns found for %q", code)))
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("The code format is unrecognized; check it was entered correctly."))
		return b.String()
	}

	plural := ""
	if len(result) > 1 {
		plural = "s"
	}
	b.WriteString(SuccessStyle.Render(fmt.Sprintf("Found %d valid interpretation%s for %q", len(result), plural, code)))
	b.WriteString("\n")
	for _, in := range result {
		b.WriteString(RenderInterpretation(in, reference, f))
		b.WriteString("\n")
	}
	return b.String()
}
