package entity

import (
	"testing"
	"time"
)

func TestWeekDayFromTime(t *testing.T) {
	tests := []struct {
		date string
		want WeekDay
	}{
		{date: "2024-01-01", want: Monday},
		{date: "2024-01-02", want: Tuesday},
		{date: "2024-01-03", want: Wednesday},
		{date: "2024-01-04", want: Thursday},
		{date: "2024-01-05", want: Friday},
		{date: "2024-01-06", want: Saturday},
		{date: "2024-01-07", want: Sunday},
	}

	for _, tt := range tests {
		day, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.date, err)
		}
		if got := WeekDayFromTime(day); got != tt.want {
			t.Errorf("WeekDayFromTime(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestWeekDayCalendarNumber(t *testing.T) {
	tests := []struct {
		day  WeekDay
		want int
	}{
		{Sunday, 1},
		{Monday, 2},
		{Tuesday, 3},
		{Wednesday, 4},
		{Thursday, 5},
		{Friday, 6},
		{Saturday, 7},
	}

	for _, tt := range tests {
		if got := tt.day.CalendarNumber(); got != tt.want {
			t.Errorf("%v.CalendarNumber() = %d, want %d", tt.day, got, tt.want)
		}
	}

	// The numbering has to agree with time.Weekday, day by day.
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		want := int(day.Weekday()) + 1
		if got := WeekDayFromTime(day).CalendarNumber(); got != want {
			t.Errorf("CalendarNumber for %s = %d, want %d", day.Format("2006-01-02"), got, want)
		}
	}
}

func TestScheduleNormalized(t *testing.T) {
	tests := []struct {
		name  string
		input Schedule
		want  Schedule
	}{
		{
			name:  "sorts display order",
			input: Schedule{Friday, Monday, Wednesday},
			want:  Schedule{Monday, Wednesday, Friday},
		},
		{
			name:  "drops duplicates",
			input: Schedule{Monday, Monday, Sunday, Monday},
			want:  Schedule{Monday, Sunday},
		},
		{
			name:  "drops invalid values",
			input: Schedule{Monday, WeekDay(0), WeekDay(8)},
			want:  Schedule{Monday},
		},
		{
			name:  "empty stays empty",
			input: Schedule{},
			want:  Schedule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Normalized()
			if len(got) != len(tt.want) {
				t.Fatalf("Normalized() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Normalized() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestScheduleContains(t *testing.T) {
	s := Schedule{Monday, Wednesday, Friday}
	if !s.Contains(Wednesday) {
		t.Error("expected schedule to contain Wednesday")
	}
	if s.Contains(Sunday) {
		t.Error("did not expect schedule to contain Sunday")
	}
}
