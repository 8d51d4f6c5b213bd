package constants

import "testing"

func TestMonthNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"jan", 1, true},
		{"January", 1, true},
		{"SEPT", 9, true},
		{"sep", 9, true},
		{"september", 9, true},
		{"dec", 12, true},
		{" May ", 5, true},
		{"foo", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := MonthNumber(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MonthNumber(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{1, "January"},
		{7, "July"},
		{12, "December"},
		{0, "Unknown"},
		{13, "Unknown"},
		{-3, "Unknown"},
	}

	for _, tt := range tests {
		if got := MonthName(tt.month); got != tt.want {
			t.Errorf("MonthName(%d) = %q, want %q", tt.month, got, tt.want)
		}
	}
}
