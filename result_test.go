package gitignore

import (
	"testing"
)

func TestMatchResultString(t *testing.T) {
	tests := []struct {
		result MatchResult
		want   string
	}{
		{NoMatch, "no match"},
		{Exclude, "exclude"},
		{Include, "include"},
		{Hidden, "hidden"},
	}

	for _, tt := range tests {
		if got := tt.result.String(); got != tt.want {
			t.Errorf("MatchResult(%d).String() = %q, want %q", int(tt.result), got, tt.want)
		}
	}
}

func TestMatchResultString_OutOfRange(t *testing.T) {
	// Only reachable through an invalid conversion; renders a diagnostic
	// instead of panicking.
	tests := []struct {
		result MatchResult
		want   string
	}{
		{MatchResult(99), "unexpected result 99"},
		{MatchResult(-1), "unexpected result -1"},
	}

	for _, tt := range tests {
		if got := tt.result.String(); got != tt.want {
			t.Errorf("MatchResult(%d).String() = %q, want %q", int(tt.result), got, tt.want)
		}
	}
}
