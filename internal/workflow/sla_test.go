package workflow

import (
	"testing"
	"time"
)

func TestReviewSLA(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"just submitted", 0, "3 days left"},
		{"a few hours old rounds up to one day", 5 * time.Hour, "2 days left"},
		{"exactly one day", 24 * time.Hour, "2 days left"},
		{"into the second day", 25 * time.Hour, "1 day left"},
		{"exactly three days", 72 * time.Hour, "1 day left"},
		{"past the window", 73 * time.Hour, "Overdue"},
		{"four days", 96 * time.Hour, "Overdue"},
		{"a week", 7 * 24 * time.Hour, "Overdue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReviewSLA(now.Add(-tt.age), now)
			if got != tt.want {
				t.Errorf("ReviewSLA(age=%v) = %q, want %q", tt.age, got, tt.want)
			}
		})
	}
}
