package gitignore

import "fmt"

// MatchResult classifies the outcome of testing a path against ignore rules.
type MatchResult int

const (
	// NoMatch means no rule applied to the path. Callers should fall back
	// to their own default, which is normally "include".
	NoMatch MatchResult = iota

	// Exclude means the path matched a rule marking it ignored.
	Exclude

	// Include means the path matched a negation rule ("!pattern") that
	// force-includes it, overriding any earlier exclusion.
	Include

	// Hidden means the path lies inside a directory that is itself
	// excluded. The path is unreachable rather than individually ignored;
	// traversals should not descend to it at all.
	Hidden
)

// String renders a MatchResult as a fixed human-readable label.
// Values outside the defined variants render a diagnostic string with the
// raw numeric value. Used for debugging and logging only.
func (r MatchResult) String() string {
	switch r {
	case Exclude:
		return "exclude"
	case Include:
		return "include"
	case NoMatch:
		return "no match"
	case Hidden:
		return "hidden"
	}
	return fmt.Sprintf("unexpected result %d", int(r))
}
