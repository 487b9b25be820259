package archive

import (
	"errors"
	"testing"
)

func TestParseDates(t *testing.T) {
	tests := []struct {
		in        string
		days      int
		cancelled bool
	}{
		{"2018-12-29", 1, false},
		{"2018-12-29,2018-12-31", 3, false},
		{"2021-05-02 CANCELLED", 1, true},
		{"2020-05-02,2020-05-05 CANCELLED", 4, true},
	}
	for _, tt := range tests {
		d, err := ParseDates(tt.in)
		if err != nil {
			t.Fatalf("ParseDates(%q): %v", tt.in, err)
		}
		if d.Days() != tt.days || d.Cancelled != tt.cancelled {
			t.Errorf("ParseDates(%q) = %+v, want %d days cancelled=%v", tt.in, d, tt.days, tt.cancelled)
		}
		if d.String() != tt.in {
			t.Errorf("String() = %q, want %q", d.String(), tt.in)
		}
	}
}

func TestParseDatesRejects(t *testing.T) {
	for _, in := range []string{"", "2021.02.27 CANCELLED", "2018-12-31,2018-12-29", "2018-12-29,", "2018-13-01"} {
		if _, err := ParseDates(in); !errors.Is(err, ErrValidation) {
			t.Errorf("ParseDates(%q): expected validation error, got %v", in, err)
		}
	}
}
