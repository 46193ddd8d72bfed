package gitignore

import (
	"bytes"
	"strings"
)

// Options configures RuleSet behavior.
type Options struct {
	// MaxBacktrackIterations limits glob and ** matching iterations for a
	// single Evaluate call.
	// Default: DefaultMaxBacktrackIterations (10000).
	// Set to 0 to use default. Set to -1 for unlimited (not recommended).
	MaxBacktrackIterations int

	// CaseInsensitive enables case-insensitive matching.
	// Default: false (case-sensitive, matching Git's default behavior).
	CaseInsensitive bool
}

// RuleSet holds the compiled patterns of one gitignore file.
//
// The patterns are stored in reverse file order: gitignore semantics say the
// last matching line in the file wins, so reversing once at load time lets
// Evaluate do a forward scan and stop at the first hit. Load happens once
// per file change; Evaluate happens once per path visited during traversal,
// so the reordering cost sits on the rare operation.
//
// Thread safety: Evaluate is read-only and safe to call from any number of
// goroutines concurrently, provided no Load is in flight on the same
// RuleSet. Callers that reload rules at runtime must serialize Load against
// Evaluate themselves, typically by building a fresh RuleSet and swapping
// the reference.
type RuleSet struct {
	patterns []*Pattern // reverse file order
	opts     Options
}

// New creates an empty RuleSet with default options.
// An empty RuleSet returns NoMatch for every path.
func New() *RuleSet {
	return &RuleSet{
		opts: Options{
			MaxBacktrackIterations: DefaultMaxBacktrackIterations,
			CaseInsensitive:        false,
		},
	}
}

// NewWithOptions creates a RuleSet with custom options.
func NewWithOptions(opts Options) *RuleSet {
	if opts.MaxBacktrackIterations == 0 {
		opts.MaxBacktrackIterations = DefaultMaxBacktrackIterations
	}
	return &RuleSet{opts: opts}
}

// Load parses contents as UTF-8 gitignore text, one rule per line, and
// replaces the RuleSet's patterns with the result. The previous patterns are
// discarded; Load never appends.
//
// A leading UTF-8 byte order mark is skipped. Lines are split on '\n'; the
// final line is honored even without a trailing newline, matching git.
// Blank lines, comments, and malformed patterns are dropped silently — Load
// cannot fail, and a bad line never rejects the rest of the file.
func (rs *RuleSet) Load(contents []byte) {
	// Skip over any leading UTF-8 byte order marker.
	if len(contents) >= 3 && contents[0] == 0xEF && contents[1] == 0xBB && contents[2] == 0xBF {
		contents = contents[3:]
	}

	var loaded []*Pattern
	for len(contents) > 0 {
		line := contents
		var rest []byte
		if i := bytes.IndexByte(contents, '\n'); i >= 0 {
			line = contents[:i]
			rest = contents[i+1:]
		}

		if p := ParseLine(string(line)); p != nil {
			loaded = append(loaded, p)
		}
		contents = rest
	}

	// Reverse so Evaluate's forward first-match scan realizes the file's
	// last-match-wins order.
	for i, j := 0, len(loaded)-1; i < j; i, j = i+1, j-1 {
		loaded[i], loaded[j] = loaded[j], loaded[i]
	}

	rs.patterns = loaded
}

// Evaluate classifies one path against the loaded rules.
//
// path must be relative to the traversal root, slash-separated, and basename
// must be path's final component; the pair is passed separately because the
// caller (a directory walker) already has both. Consistency of the pair is
// not verified.
//
// Patterns are tested in storage order and the first non-NoMatch result is
// returned; NoMatch means no rule applied and the caller should use its own
// default. Evaluate never mutates the RuleSet.
func (rs *RuleSet) Evaluate(path, basename string) MatchResult {
	if len(rs.patterns) == 0 {
		return NoMatch
	}

	pathSegments := splitPath(path)
	ctx := newMatchContext(rs.opts.MaxBacktrackIterations)

	for _, p := range rs.patterns {
		result := p.match(pathSegments, basename, rs.opts.CaseInsensitive, ctx)
		if result != NoMatch {
			return result
		}
	}

	return NoMatch
}

// RuleCount returns the number of patterns currently loaded.
// Useful for debugging and testing.
func (rs *RuleSet) RuleCount() int {
	return len(rs.patterns)
}

// String returns a debug listing of the loaded patterns in evaluation order.
func (rs *RuleSet) String() string {
	if len(rs.patterns) == 0 {
		return "<empty ruleset>"
	}

	var b strings.Builder
	for i, p := range rs.patterns {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.String())
	}
	return b.String()
}
