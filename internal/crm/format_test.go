package crm

import (
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{25000, "₹25,000"},
		{1250000, "₹1,250,000"},
		{-4500, "-₹4,500"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatCurrency(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)
	if got, want := FormatDate(ts), "Mar 05, 2024 14:07"; got != want {
		t.Errorf("FormatDate() = %q, want %q", got, want)
	}
}

func TestFormatRelative(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "Just now"},
		{"future", -time.Minute, "Just now"},
		{"minutes", 5 * time.Minute, "5m ago"},
		{"hours", 3*time.Hour + 20*time.Minute, "3h ago"},
		{"days", 2*24*time.Hour + time.Hour, "2d ago"},
		{"over a week", 8 * 24 * time.Hour, "Mar 02, 2024 12:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRelative(now.Add(-tt.ago), now); got != tt.want {
				t.Errorf("FormatRelative() = %q, want %q", got, tt.want)
			}
		})
	}
}
