package glob

import "strings"

const doubleStar = "**"

// Pattern is a compiled glob split into path segments.
// A Pattern is never modified after Compile; matching progress is tracked by Cursor values.
type Pattern struct {
	text       string
	segments   []string
	ignoreCase bool
}

// Compile normalizes text and splits it into segments.
//
// Backslashes become forward slashes and every ** is isolated into its own
// segment ("**.txt" becomes "**/*.txt", "src**" becomes "src*/**").
// Repeated ** segments collapse into one and a trailing slash is ignored.
// With ignoreCase the pattern is lower-cased and names are lower-cased before matching.
func Compile(text string, ignoreCase bool) *Pattern {
	normalized := strings.ReplaceAll(text, "\\", "/")
	if ignoreCase {
		normalized = strings.ToLower(normalized)
	}

	parts := strings.Split(normalized, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		for _, seg := range isolateDoubleStar(part) {
			if seg == doubleStar && len(segments) > 0 && segments[len(segments)-1] == doubleStar {
				continue
			}
			segments = append(segments, seg)
		}
	}
	for len(segments) > 1 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	return &Pattern{
		text:       text,
		segments:   segments,
		ignoreCase: ignoreCase,
	}
}

// isolateDoubleStar rewrites one raw segment so that ** only appears as a whole segment.
func isolateDoubleStar(seg string) []string {
	if seg == doubleStar || !strings.Contains(seg, doubleStar) {
		return []string{seg}
	}

	parts := strings.Split(seg, doubleStar)
	last := len(parts) - 1
	out := make([]string, 0, 2*len(parts))
	for i, part := range parts {
		if i > 0 {
			out = append(out, doubleStar)
		}
		if part == "" {
			continue
		}
		if i > 0 && !strings.HasPrefix(part, "*") {
			part = "*" + part
		}
		if i < last && !strings.HasSuffix(part, "*") {
			part += "*"
		}
		out = append(out, part)
	}
	return out
}

// String returns the pattern text as given to Compile.
func (p *Pattern) String() string {
	return p.text
}

// Segments returns a copy of the normalized segments.
func (p *Pattern) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// IgnoreCase reports whether the pattern matches case-insensitively.
func (p *Pattern) IgnoreCase() bool {
	return p.ignoreCase
}

// Cursor returns a cursor positioned on the first segment.
func (p *Pattern) Cursor() Cursor {
	return Cursor{pattern: p}
}

// isAnyDepthName reports whether the pattern has the shape "**/X",
// which can be decided by looking at individual names only.
func (p *Pattern) isAnyDepthName() bool {
	return len(p.segments) == 2 && p.segments[0] == doubleStar
}

func (p *Pattern) matchSegment(seg, name string) bool {
	if seg == doubleStar {
		return true
	}
	if p.ignoreCase {
		name = strings.ToLower(name)
	}
	if !hasWildcard(seg) {
		return name == seg
	}
	return matchWildcard(seg, name)
}

// Cursor is a position inside a Pattern.
//
// Cursors are values: Advance, Retreat and Reset return new cursors and leave
// the receiver untouched, so a walk can hand the same cursor to several
// sibling entries without undoing anything afterwards.
type Cursor struct {
	pattern *Pattern
	index   int
}

// Pattern returns the pattern the cursor walks.
func (c Cursor) Pattern() *Pattern {
	return c.pattern
}

// Index returns the segment position, in [0, len(segments)].
func (c Cursor) Index() int {
	return c.index
}

// Segment returns the segment under the cursor; ok is false once the cursor is exhausted.
func (c Cursor) Segment() (seg string, ok bool) {
	if c.IsExhausted() {
		return "", false
	}
	return c.pattern.segments[c.index], true
}

// MatchesSegment reports whether name satisfies the segment under the cursor.
func (c Cursor) MatchesSegment(name string) bool {
	seg, ok := c.Segment()
	if !ok {
		return false
	}
	return c.pattern.matchSegment(seg, name)
}

// Advance steps over the entry called name.
//
// A plain segment always advances by one. A ** that is not the last segment
// advances past itself and the following segment only when name matches that
// following segment; otherwise the unchanged cursor is returned with false and
// keeps absorbing directory depth. A trailing ** never moves.
func (c Cursor) Advance(name string) (Cursor, bool) {
	seg, ok := c.Segment()
	if !ok {
		return c, false
	}
	if seg != doubleStar {
		return Cursor{pattern: c.pattern, index: c.index + 1}, true
	}
	if c.index == len(c.pattern.segments)-1 {
		return c, false
	}

	next := Cursor{pattern: c.pattern, index: c.index + 1}
	if !next.MatchesSegment(name) {
		return c, false
	}
	return Cursor{pattern: c.pattern, index: c.index + 2}, true
}

// Retreat steps back one segment, landing on a preceding ** when there is one.
func (c Cursor) Retreat() Cursor {
	i := c.index - 1
	if i > 0 && c.pattern.segments[i-1] == doubleStar {
		i--
	}
	if i < 0 {
		i = 0
	}
	return Cursor{pattern: c.pattern, index: i}
}

// Reset returns a cursor on the first segment.
func (c Cursor) Reset() Cursor {
	return Cursor{pattern: c.pattern}
}

// IsExhausted reports whether every segment has been consumed.
func (c Cursor) IsExhausted() bool {
	return c.index >= len(c.pattern.segments)
}

// IsFinal reports whether the entry that produced this cursor satisfies the whole pattern.
func (c Cursor) IsFinal() bool {
	if c.IsExhausted() {
		return true
	}
	return c.index == len(c.pattern.segments)-1 && c.pattern.segments[c.index] == doubleStar
}

// IsLiteral reports whether the current segment contains no wildcard.
func (c Cursor) IsLiteral() bool {
	seg, ok := c.Segment()
	return ok && !hasWildcard(seg)
}
