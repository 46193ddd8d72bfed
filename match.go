package gitignore

import (
	"strings"
)

// DefaultMaxBacktrackIterations is the default limit for pattern matching
// iterations. This prevents pathological patterns from causing excessive CPU
// usage. The budget is shared across all patterns for a single Evaluate call
// and covers both segment-level ** matching and character-level glob
// matching (*, ?). Can be overridden via Options.
const DefaultMaxBacktrackIterations = 10000

// matchContext tracks state during matching to prevent runaway backtracking.
type matchContext struct {
	iterations int
	maxIter    int
}

// newMatchContext creates a new match context with the specified limit.
// If maxIter is 0, uses DefaultMaxBacktrackIterations.
// If maxIter is -1, no limit is applied (not recommended).
func newMatchContext(maxIter int) *matchContext {
	if maxIter == 0 {
		maxIter = DefaultMaxBacktrackIterations
	}
	return &matchContext{maxIter: maxIter}
}

// tick increments the iteration counter and returns false if limit exceeded.
func (ctx *matchContext) tick() bool {
	ctx.iterations++
	if ctx.maxIter < 0 {
		return true // No limit
	}
	return ctx.iterations <= ctx.maxIter
}

// Match tests this pattern against one path/basename pair, with default
// options. path is slash-separated and relative to the traversal root;
// basename is path's final component, passed separately because callers
// walking a directory already have it at hand.
//
// The result is NoMatch when the pattern does not apply; otherwise Exclude
// or Include per the pattern's polarity, or Hidden when the path lies
// strictly beneath a directory this (directory-only, non-negated) pattern
// excludes.
func (p *Pattern) Match(path, basename string) MatchResult {
	ctx := newMatchContext(0)
	return p.match(splitPath(path), basename, false, ctx)
}

// match is the option-aware form of Match used by RuleSet.Evaluate. The
// matchContext is shared across every pattern tested for one Evaluate call
// so the backtrack budget bounds the whole query.
func (p *Pattern) match(pathSegments []string, basename string, caseInsensitive bool, ctx *matchContext) MatchResult {
	// Check if we've already exhausted the budget
	if !ctx.tick() {
		return NoMatch
	}

	if len(pathSegments) == 0 {
		return NoMatch
	}

	// Does the pattern match the path itself?
	if p.matchesPath(pathSegments, basename, caseInsensitive, ctx) {
		// Directory-only patterns classify a self-match the same way:
		// the evaluator carries no file type, so a path whose own name
		// matches is treated as the directory in question.
		if p.negate {
			return Include
		}
		return Exclude
	}

	// Directory-only patterns also govern everything beneath a matching
	// directory. A path inside an excluded directory is unreachable, which
	// is a distinct outcome from matching an exclude rule itself.
	if p.dirOnly && p.matchesAncestor(pathSegments, caseInsensitive, ctx) {
		if p.negate {
			// Re-including a directory says nothing about an individual
			// child; the child falls through to the remaining rules.
			return NoMatch
		}
		return Hidden
	}

	return NoMatch
}

// matchesPath reports whether the pattern matches the full path.
// Anchored patterns must consume every path segment from the root.
// Floating patterns (no slash) test the basename alone, which is how they
// match at any depth.
func (p *Pattern) matchesPath(pathSegments []string, basename string, caseInsensitive bool, ctx *matchContext) bool {
	if !p.anchored {
		return matchSingleSegment(p.segments[0], basename, caseInsensitive, ctx)
	}
	return matchSegments(p.segments, pathSegments, caseInsensitive, ctx)
}

// matchesAncestor reports whether the pattern matches a proper ancestor
// directory of the path (any prefix shorter than the whole path).
func (p *Pattern) matchesAncestor(pathSegments []string, caseInsensitive bool, ctx *matchContext) bool {
	if !p.anchored {
		// Floating pattern: any parent component can be the matching
		// directory. The final segment is the path itself, not an ancestor.
		for _, seg := range pathSegments[:len(pathSegments)-1] {
			if !ctx.tick() {
				return false
			}
			if matchSingleSegment(p.segments[0], seg, caseInsensitive, ctx) {
				return true
			}
		}
		return false
	}

	// Anchored pattern: try each proper prefix of the path.
	for k := 1; k < len(pathSegments); k++ {
		if !ctx.tick() {
			return false
		}
		if matchSegments(p.segments, pathSegments[:k], caseInsensitive, ctx) {
			return true
		}
	}
	return false
}

// matchSegments recursively matches pattern segments against path segments.
// This is the core matching algorithm with ** support: the pattern must
// consume the path exactly, with ** spanning zero or more path segments.
func matchSegments(pattern []segment, path []string, caseInsensitive bool, ctx *matchContext) bool {
	// Check iteration limit
	if !ctx.tick() {
		return false
	}

	// Base cases
	if len(pattern) == 0 {
		return len(path) == 0
	}

	seg := pattern[0]

	// Handle ** (double-star)
	if seg.doubleStar {
		// ** can match zero or more path segments.
		// Try matching remaining pattern against path starting at each position.
		for i := 0; i <= len(path); i++ {
			if matchSegments(pattern[1:], path[i:], caseInsensitive, ctx) {
				return true
			}
			if !ctx.tick() {
				return false
			}
		}
		return false
	}

	// No more path segments but still have pattern segments (non-**)
	if len(path) == 0 {
		return false
	}

	// Match current segment
	if !matchSingleSegment(seg, path[0], caseInsensitive, ctx) {
		return false
	}

	// Recurse for remaining segments
	return matchSegments(pattern[1:], path[1:], caseInsensitive, ctx)
}

// matchSingleSegment matches a single pattern segment against a path segment.
// Handles literal strings, * wildcards, ? wildcards, and \ escapes.
// The matchContext is shared with the caller so glob-level backtracking
// counts against the same budget as segment-level matching.
func matchSingleSegment(seg segment, pathSeg string, caseInsensitive bool, ctx *matchContext) bool {
	if seg.doubleStar {
		// A lone ** matches any single component too.
		return true
	}

	pattern := seg.value
	if caseInsensitive {
		pattern = strings.ToLower(pattern)
		pathSeg = strings.ToLower(pathSeg)
	}

	if !seg.wildcard {
		// Literal match
		return pattern == pathSeg
	}

	// Wildcard matching (glob-style *, ?, \)
	return matchGlob(pattern, pathSeg, ctx)
}

// matchGlob matches a glob pattern against a string.
// Supports * as "match zero or more characters" and ? as "match exactly one
// character". Backtracking is bounded by the shared matchContext.
func matchGlob(pattern, s string, ctx *matchContext) bool {
	// Fast path: no wildcards or escapes
	if !strings.ContainsAny(pattern, "*?\\") {
		return pattern == s
	}

	// Fast path: single * matches everything
	if pattern == "*" {
		return true
	}

	// Fast paths only apply when there are no ? wildcards and no \ escapes
	if !strings.ContainsAny(pattern, "?\\") {
		// Fast path: prefix* pattern
		if strings.Count(pattern, "*") == 1 && strings.HasSuffix(pattern, "*") {
			return strings.HasPrefix(s, pattern[:len(pattern)-1])
		}

		// Fast path: *suffix pattern
		if strings.Count(pattern, "*") == 1 && strings.HasPrefix(pattern, "*") {
			return strings.HasSuffix(s, pattern[1:])
		}
	}

	// General case: use recursive matching
	return matchGlobRecursive(pattern, s, ctx)
}

// matchGlobRecursive performs recursive glob matching.
// This handles patterns with * (zero or more chars), ? (exactly one char),
// and \ (escape next character for literal matching).
// Backtracking is bounded by the shared matchContext to prevent pathological
// patterns (e.g., *a*a*a*a*b) from causing excessive CPU usage.
func matchGlobRecursive(pattern, s string, ctx *matchContext) bool {
	for len(pattern) > 0 {
		if !ctx.tick() {
			return false // Backtrack limit exceeded
		}

		if pattern[0] == '*' {
			// Skip consecutive stars
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			// Trailing * matches rest of string
			if len(pattern) == 0 {
				return true
			}
			// Try matching * with increasing number of characters
			for i := 0; i <= len(s); i++ {
				if matchGlobRecursive(pattern, s[i:], ctx) {
					return true
				}
				if !ctx.tick() {
					return false
				}
			}
			return false
		}

		if pattern[0] == '?' {
			// ? matches exactly one character
			if len(s) == 0 {
				return false
			}
			pattern = pattern[1:]
			s = s[1:]
			continue
		}

		if pattern[0] == '\\' && len(pattern) > 1 {
			// Backslash escapes the next character (literal match)
			pattern = pattern[1:] // skip the backslash
			// Fall through to literal character comparison below
		}

		// No more string to match
		if len(s) == 0 {
			return false
		}

		// Characters must match
		if pattern[0] != s[0] {
			return false
		}

		pattern = pattern[1:]
		s = s[1:]
	}

	return len(s) == 0
}

// splitPath splits a slash-separated path into segments.
// Empty segments (from leading/trailing/double slashes) are filtered out.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}

	parts := strings.Split(path, "/")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
