// Package gitignore classifies paths against the rules of one gitignore file.
//
// This is a minimal, zero-dependency library built around a single RuleSet:
// Load compiles the text of an ignore file into an ordered rule sequence,
// and Evaluate classifies one path per query. It is meant to sit on the hot
// path of a directory traversal — Load runs once per file change, Evaluate
// runs once per path visited.
//
// # Basic Usage
//
//	rs := gitignore.New()
//
//	content, _ := os.ReadFile(".gitignore")
//	rs.Load(content)
//
//	switch rs.Evaluate("build/output.js", "output.js") {
//	case gitignore.Exclude, gitignore.Hidden:
//	    // skip the path
//	case gitignore.Include:
//	    // force-included by a ! rule
//	case gitignore.NoMatch:
//	    // no rule applied; use your own default
//	}
//
// # Match Results
//
// Evaluate distinguishes four outcomes rather than a boolean:
//
//   - NoMatch: no rule applied
//   - Exclude: the path matched an ignore rule
//   - Include: the path matched a negation ("!") rule
//   - Hidden: the path sits inside an excluded directory and is
//     unreachable, which is not the same as matching a rule itself
//
// # Last Match Wins
//
// When several lines of an ignore file match the same path, git gives the
// last line precedence. Load bakes that in by storing the compiled rules in
// reverse file order, so Evaluate scans forward and stops at the first hit.
//
// # Thread Safety
//
// Evaluate is read-only and safe for any number of concurrent callers.
// Load replaces the whole rule sequence and must not run concurrently with
// Evaluate on the same RuleSet; rebuild a fresh RuleSet and swap it in, or
// hold an external lock around reloads.
//
// # Supported Syntax
//
// The following gitignore patterns are supported:
//
//   - Plain names: "debug.log" matches anywhere in tree
//   - Leading /: "/debug.log" matches only at the root
//   - Trailing /: "build/" matches directories only
//   - Single star: "*.log" matches any .log file
//   - Double star: "**/logs" matches at any depth
//   - Negation: "!important.log" re-includes a file
//   - Escapes: "\!literal", "\#literal", "foo\ " (trailing space)
//
// Character classes ([abc], [0-9]) are not supported.
//
// # Input Format
//
// Load accepts the raw bytes of an ignore file: a leading UTF-8 byte order
// mark is skipped, lines are split on '\n' (a trailing '\r' per line is
// tolerated for CRLF files), and the final line counts even without a
// trailing newline. Blank lines, "#" comments, and malformed patterns are
// dropped silently — Load never fails.
package gitignore
