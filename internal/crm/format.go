package crm

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

const dateLayout = "Jan 02, 2006 15:04"

// FormatCurrency renders a rupee amount with thousands separators.
func FormatCurrency(amount int) string {
	if amount < 0 {
		return "-₹" + humanize.Comma(int64(-amount))
	}
	return "₹" + humanize.Comma(int64(amount))
}

// FormatDate renders an absolute timestamp.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatRelative renders t relative to now, falling back to the date
// after a week.
func FormatRelative(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	default:
		return FormatDate(t)
	}
}
