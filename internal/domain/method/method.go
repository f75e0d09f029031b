package method

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/pagedex/internal/domain"
)

// Method is one entry of the lyah reference list.
type Method struct {
	Signature      string `json:"signature"`
	Description    string `json:"description"`
	SourceURL      string `json:"sourceUrl"`
	InstructionSet string `json:"instructionSet,omitempty"`
	Since          string `json:"since"`
}

// Standard is a C++ language standard identified by its year.
type Standard int

// Supported standards. Unspecified formats signatures as pre-C++11.
const (
	Unspecified Standard = 0
	CPP03       Standard = 2003
	CPP11       Standard = 2011
	CPP14       Standard = 2014
	CPP17       Standard = 2017
	CPP20       Standard = 2020
	CPP23       Standard = 2023
	CPP26       Standard = 2026
)

var standards = []Standard{CPP03, CPP11, CPP14, CPP17, CPP20, CPP23, CPP26}

// Standards returns every selectable standard, oldest first.
func Standards() []Standard {
	out := make([]Standard, len(standards))
	copy(out, standards)
	return out
}

// IsValid reports whether s is a known standard.
func (s Standard) IsValid() bool {
	if s == Unspecified {
		return true
	}
	for _, v := range standards {
		if v == s {
			return true
		}
	}
	return false
}

// String returns the conventional short name, e.g. "C++17".
func (s Standard) String() string {
	if s == Unspecified {
		return "unspecified"
	}
	return fmt.Sprintf("C++%02d", int(s)%100)
}

// ParseStandard parses a year ("2017") or a short name ("c++17", "17").
// An empty string yields def.
func ParseStandard(raw string, def Standard) (Standard, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return def, nil
	}
	raw = strings.TrimPrefix(raw, "c++")

	n, err := strconv.Atoi(raw)
	if err != nil {
		return Unspecified, fmt.Errorf("%w: %q", domain.ErrInvalidStandard, raw)
	}
	if n > 0 && n < 100 {
		n += 2000
	}

	s := Standard(n)
	if !s.IsValid() {
		return Unspecified, fmt.Errorf("%w: %d", domain.ErrInvalidStandard, n)
	}
	return s, nil
}
