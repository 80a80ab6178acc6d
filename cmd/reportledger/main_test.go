package main

import (
	"testing"
	"time"
)

func TestDefaultJournalDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"mid month", time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC), "8/31/26"},
		{"first of month", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), "2/28/26"},
		{"january rolls to december", time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), "12/31/25"},
		{"leap february", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), "2/29/24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultJournalDate(tt.now); got != tt.want {
				t.Errorf("defaultJournalDate(%s) = %q, want %q", tt.now.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}
