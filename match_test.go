package gitignore

import (
	"strings"
	"testing"
)

func TestPatternMatch_Floating(t *testing.T) {
	tests := []struct {
		line     string
		path     string
		basename string
		want     MatchResult
	}{
		// Plain names match the basename at any depth.
		{"foo", "foo", "foo", Exclude},
		{"foo", "a/b/foo", "foo", Exclude},
		{"foo", "a/foo/b", "b", NoMatch}, // not dirOnly, no ancestor scan
		{"foo", "bar", "bar", NoMatch},
		{"foo", "foobar", "foobar", NoMatch},

		// Globs against the basename.
		{"*.log", "debug.log", "debug.log", Exclude},
		{"*.log", "a/b/debug.log", "debug.log", Exclude},
		{"*.log", "debug.txt", "debug.txt", NoMatch},
		{"?.log", "a.log", "a.log", Exclude},
		{"?.log", "ab.log", "ab.log", NoMatch},
		{"*", "anything", "anything", Exclude},

		// Negation flips polarity.
		{"!keep.log", "keep.log", "keep.log", Include},
		{"!keep.log", "a/keep.log", "keep.log", Include},
		{"!keep.log", "drop.log", "drop.log", NoMatch},
	}

	for _, tt := range tests {
		p := ParseLine(tt.line)
		if p == nil {
			t.Fatalf("ParseLine(%q) = nil", tt.line)
		}
		if got := p.Match(tt.path, tt.basename); got != tt.want {
			t.Errorf("pattern %q: Match(%q, %q) = %v, want %v",
				tt.line, tt.path, tt.basename, got, tt.want)
		}
	}
}

func TestPatternMatch_Anchored(t *testing.T) {
	tests := []struct {
		line     string
		path     string
		basename string
		want     MatchResult
	}{
		// Leading slash pins the pattern to the root.
		{"/debug.log", "debug.log", "debug.log", Exclude},
		{"/debug.log", "a/debug.log", "debug.log", NoMatch},

		// An embedded slash anchors too.
		{"doc/frotz", "doc/frotz", "frotz", Exclude},
		{"doc/frotz", "a/doc/frotz", "frotz", NoMatch},
		{"doc/*.txt", "doc/readme.txt", "readme.txt", Exclude},
		{"doc/*.txt", "doc/sub/readme.txt", "readme.txt", NoMatch},

		// Double star spans directories.
		{"**/foo", "foo", "foo", Exclude},
		{"**/foo", "a/b/foo", "foo", Exclude},
		{"**/foo", "a/b/bar", "bar", NoMatch},
		{"a/**/b", "a/b", "b", Exclude},
		{"a/**/b", "a/x/b", "b", Exclude},
		{"a/**/b", "a/x/y/z/b", "b", Exclude},
		{"a/**/b", "x/a/b", "b", NoMatch},
		{"abc/**", "abc/file.txt", "file.txt", Exclude},
		{"abc/**", "abc/x/y", "y", Exclude},
		{"abc/**", "other/file.txt", "file.txt", NoMatch},
	}

	for _, tt := range tests {
		p := ParseLine(tt.line)
		if p == nil {
			t.Fatalf("ParseLine(%q) = nil", tt.line)
		}
		if got := p.Match(tt.path, tt.basename); got != tt.want {
			t.Errorf("pattern %q: Match(%q, %q) = %v, want %v",
				tt.line, tt.path, tt.basename, got, tt.want)
		}
	}
}

func TestPatternMatch_DirOnly(t *testing.T) {
	tests := []struct {
		line     string
		path     string
		basename string
		want     MatchResult
	}{
		// Self-match is the exclusion, descendants are hidden.
		{"build/", "build", "build", Exclude},
		{"build/", "a/build", "build", Exclude},
		{"build/", "build/out.js", "out.js", Hidden},
		{"build/", "build/a/b/c", "c", Hidden},
		{"build/", "a/build/x", "x", Hidden},
		{"build/", "builder/x", "x", NoMatch},

		// Anchored directory pattern.
		{"/build/", "build", "build", Exclude},
		{"/build/", "build/out.js", "out.js", Hidden},
		{"/build/", "a/build", "build", NoMatch},
		{"/build/", "a/build/x", "x", NoMatch},
		{"doc/gen/", "doc/gen", "gen", Exclude},
		{"doc/gen/", "doc/gen/a/b", "b", Hidden},
		{"doc/gen/", "gen", "gen", NoMatch},

		// Glob directory pattern.
		{"*cache*/", "mycache2", "mycache2", Exclude},
		{"*cache*/", "mycache2/entry", "entry", Hidden},

		// Negated directory rule re-includes the directory itself only;
		// children fall through to other rules.
		{"!build/", "build", "build", Include},
		{"!build/", "build/out.js", "out.js", NoMatch},
	}

	for _, tt := range tests {
		p := ParseLine(tt.line)
		if p == nil {
			t.Fatalf("ParseLine(%q) = nil", tt.line)
		}
		if got := p.Match(tt.path, tt.basename); got != tt.want {
			t.Errorf("pattern %q: Match(%q, %q) = %v, want %v",
				tt.line, tt.path, tt.basename, got, tt.want)
		}
	}
}

func TestPatternMatch_EmptyPath(t *testing.T) {
	p := ParseLine("*")
	if p == nil {
		t.Fatal("ParseLine(*) = nil")
	}
	if got := p.Match("", ""); got != NoMatch {
		t.Errorf("Match(\"\", \"\") = %v, want NoMatch", got)
	}
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		// Literals
		{"foo", "foo", true},
		{"foo", "bar", false},
		{"foo", "foobar", false},

		// Single * fast path
		{"*", "", true},
		{"*", "anything", true},

		// Prefix/suffix fast paths
		{"*.log", "debug.log", true},
		{"*.log", ".log", true},
		{"*.log", "log", false},
		{"foo*", "foo", true},
		{"foo*", "foobar", true},
		{"foo*", "bar", false},

		// Middle and multiple stars
		{"foo*bar", "foobar", true},
		{"foo*bar", "fooxyzbar", true},
		{"foo*bar", "foobaz", false},
		{"*foo*", "xfooy", true},
		{"*foo*", "bar", false},
		{"*.test.*", "pkg.test.go", true},
		{"*.test.*", "test.go", false},

		// Question mark
		{"?", "a", true},
		{"?", "", false},
		{"?", "ab", false},
		{"a?c", "abc", true},
		{"a?c", "ac", false},
		{"fo?.log", "foo.log", true},

		// Escapes
		{`\*`, "*", true},
		{`\*`, "a", false},
		{`\?`, "?", true},
		{`\?`, "a", false},
		{`a\*b`, "a*b", true},
		{`a\*b`, "axb", false},
	}

	for _, tt := range tests {
		ctx := newMatchContext(0)
		if got := matchGlob(tt.pattern, tt.input, ctx); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
		}
	}
}

func TestMatchGlob_BudgetExhaustion(t *testing.T) {
	ctx := newMatchContext(50)
	pattern := "*a*a*a*a*a*a*a*b"
	input := strings.Repeat("a", 50)

	if matchGlob(pattern, input, ctx) {
		t.Error("pathological pattern should not match")
	}
	if ctx.maxIter >= 0 && ctx.iterations <= ctx.maxIter {
		t.Errorf("expected budget exhaustion, used %d of %d", ctx.iterations, ctx.maxIter)
	}
}

func TestMatchContext_Unlimited(t *testing.T) {
	ctx := newMatchContext(-1)
	for i := 0; i < DefaultMaxBacktrackIterations*2; i++ {
		if !ctx.tick() {
			t.Fatal("unlimited context should never deny a tick")
		}
	}
}

func TestMatchSegments(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"a/b/c", "a/b/c", true},
		{"a/b/c", "a/b", false},
		{"a/b", "a/b/c", false},
		{"a/*/c", "a/b/c", true},
		{"a/*/c", "a/b/d", false},
		{"**", "a", true},
		{"**", "a/b/c", true},
		{"**/c", "c", true},
		{"**/c", "a/b/c", true},
		{"a/**", "a", true},
		{"a/**", "a/b/c", true},
		{"a/**/c", "a/c", true},
		{"a/**/c", "a/b/x/c", true},
		{"a/**/c", "a/b/x/d", false},
	}

	for _, tt := range tests {
		ctx := newMatchContext(0)
		got := matchSegments(parseSegments(tt.pattern), splitPath(tt.path), false, ctx)
		if got != tt.want {
			t.Errorf("matchSegments(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a/b/c", []string{"a", "b", "c"}},
		{"/a/b", []string{"a", "b"}},
		{"a//b", []string{"a", "b"}},
		{"a/b/", []string{"a", "b"}},
	}

	for _, tt := range tests {
		got := splitPath(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitPath(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitPath(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
