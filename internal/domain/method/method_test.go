package method

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/pagedex/internal/domain"
)

func TestParseStandard(t *testing.T) {
	tests := []struct {
		raw  string
		want Standard
	}{
		{"", CPP23},
		{"2017", CPP17},
		{"c++20", CPP20},
		{"C++11", CPP11},
		{"26", CPP26},
		{" 2003 ", CPP03},
		{"0", Unspecified},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseStandard(tc.raw, CPP23)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseStandard(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseStandard_Invalid(t *testing.T) {
	for _, raw := range []string{"c++", "2019", "abc", "98"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseStandard(raw, CPP23)
			if !errors.Is(err, domain.ErrInvalidStandard) {
				t.Errorf("expected ErrInvalidStandard, got %v", err)
			}
		})
	}
}

func TestStandard_String(t *testing.T) {
	if got := CPP03.String(); got != "C++03" {
		t.Errorf("CPP03.String() = %q", got)
	}
	if got := CPP26.String(); got != "C++26" {
		t.Errorf("CPP26.String() = %q", got)
	}
	if got := Unspecified.String(); got != "unspecified" {
		t.Errorf("Unspecified.String() = %q", got)
	}
}

func TestStandards_ReturnsCopy(t *testing.T) {
	s := Standards()
	s[0] = 1999
	if Standards()[0] != CPP03 {
		t.Fatal("Standards() must not expose the internal slice")
	}
}
