package gitignore

import (
	"strings"
)

// Pattern is one compiled rule from a gitignore file. Patterns are immutable
// once built by ParseLine and are owned by the RuleSet that loaded them.
type Pattern struct {
	pattern  string    // original line text (for debugging/reporting)
	segments []segment // parsed pattern segments for matching
	negate   bool      // true if pattern started with !
	dirOnly  bool      // true if pattern ended with /
	anchored bool      // true if pattern must match from the root
}

// segment represents one part of a pattern split by "/".
// Each segment can be a literal string, contain wildcards, or be a double-star.
type segment struct {
	value      string // literal or pattern text (empty for **)
	wildcard   bool   // contains *, ?, or \ - requires glob matching
	doubleStar bool   // is ** - matches zero or more directories
}

// ParseLine compiles a single gitignore line into a Pattern.
// Returns nil for empty lines, comments, and malformed patterns — a nil
// result means the line contributes no rule. The line must not contain a
// newline; a single trailing carriage return is tolerated so CRLF files
// parse the same as LF files.
func ParseLine(line string) *Pattern {
	// Step 1: Drop one trailing \r left behind by CRLF line endings.
	line = strings.TrimSuffix(line, "\r")

	// Step 2: Trim trailing whitespace (Git behavior, \-escaped spaces kept)
	line = trimTrailingWhitespace(line)

	// Step 3: Skip empty lines
	if line == "" {
		return nil
	}

	// Step 4: Skip comments
	if strings.HasPrefix(line, "#") {
		return nil
	}

	// Store original for debug output
	original := line

	// Step 5: Handle negation and \! escape.
	// \! at start escapes the bang, treating it as literal (not negation).
	// Must check \! before ! to prevent misinterpreting escaped bangs.
	negate := false
	if strings.HasPrefix(line, "\\!") {
		line = line[1:] // Remove backslash, keep literal !
	} else if strings.HasPrefix(line, "!") {
		negate = true
		line = line[1:]
	}

	// Step 6: Handle \# escape (after negation to support !\#foo)
	if strings.HasPrefix(line, "\\#") {
		line = line[1:] // Remove backslash, keep literal #
	}

	// Step 7: Check for directory-only (trailing /)
	dirOnly := false
	if strings.HasSuffix(line, "/") {
		dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	// Step 8: Pattern empty after stripping (lone "!", lone "/", etc.)
	if line == "" {
		return nil
	}

	// Step 9: Trailing backslash is an invalid pattern (never matches).
	// Count consecutive trailing backslashes: odd means a lone trailing \.
	if strings.HasSuffix(line, "\\") {
		bs := 0
		for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
			bs++
		}
		if bs%2 == 1 {
			return nil
		}
	}

	// Step 10: Determine anchoring. A leading / anchors the pattern to the
	// root; so does any other / in the pattern ("doc/frotz" only matches at
	// the top level, per git). A pattern with no / floats and is matched
	// against the basename alone. A leading **/ needs no special case here:
	// the ** segment already spans any number of leading directories.
	anchored := false
	if strings.HasPrefix(line, "/") {
		anchored = true
		line = line[1:]
		if line == "" {
			return nil
		}
	} else if strings.Contains(line, "/") {
		anchored = true
	}

	segments := parseSegments(line)
	if len(segments) == 0 {
		// Nothing but slashes left ("///" and friends)
		return nil
	}

	return &Pattern{
		pattern:  original,
		segments: segments,
		negate:   negate,
		dirOnly:  dirOnly,
		anchored: anchored,
	}
}

// parseSegments splits a pattern by "/" and classifies each segment.
func parseSegments(pattern string) []segment {
	parts := strings.Split(pattern, "/")
	segments := make([]segment, 0, len(parts))

	for _, part := range parts {
		// Skip empty parts (from leading/trailing/double slashes)
		if part == "" {
			continue
		}

		seg := segment{value: part}

		if part == "**" {
			seg.doubleStar = true
			seg.value = ""
		} else if strings.ContainsAny(part, "*?\\") {
			// Segments with *, ?, or \ all require glob matching.
			// Backslash escapes (e.g., \* for literal *) are resolved during matching.
			seg.wildcard = true
		}

		segments = append(segments, seg)
	}

	return segments
}

// trimTrailingWhitespace removes trailing spaces and tabs from a line,
// respecting backslash-escaped spaces per the gitignore spec.
//
// Git behavior: "Trailing spaces are ignored unless they are quoted with backslash."
//   - "foo "    → "foo"    (trailing space stripped)
//   - "foo\ "   → "foo "   (escaped space preserved, backslash removed)
//   - "foo\\ "  → "foo\\"  (escaped backslash, unescaped trailing space stripped)
func trimTrailingWhitespace(line string) string {
	// Find end of non-whitespace content
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}

	if end == len(line) {
		return line // No trailing whitespace
	}

	// Count consecutive backslashes immediately before the whitespace
	bs := 0
	for i := end - 1; i >= 0 && line[i] == '\\'; i-- {
		bs++
	}

	// Odd number of backslashes means the last one escapes the first space
	if bs%2 == 1 && line[end] == ' ' {
		// Remove the escaping backslash, keep the space
		return line[:end-1] + " "
	}

	return line[:end]
}

// Negate reports whether this is a negation ("!") rule.
func (p *Pattern) Negate() bool { return p.negate }

// DirOnly reports whether the rule only applies to directories.
func (p *Pattern) DirOnly() bool { return p.dirOnly }

// Anchored reports whether the rule is anchored to the root rather than
// floating against basenames at any depth.
func (p *Pattern) Anchored() bool { return p.anchored }

// String returns a debug representation of a pattern.
func (p *Pattern) String() string {
	var flags []string
	if p.negate {
		flags = append(flags, "negate")
	}
	if p.dirOnly {
		flags = append(flags, "dirOnly")
	}
	if p.anchored {
		flags = append(flags, "anchored")
	}

	flagStr := ""
	if len(flags) > 0 {
		flagStr = " [" + strings.Join(flags, ",") + "]"
	}

	return p.pattern + flagStr
}
