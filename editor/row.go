package editor

// TabStop is the column width a TAB expands to: the next rendered column
// is the smallest multiple of TabStop strictly greater than the current
// one. spec.md §3 fixes this at 8, matching the original kilo.c; the
// -tabstop flag in cmd/kigo is the one place that overrides it, and
// must do so before any file is loaded.
var TabStop = 8

// Highlight tags one rendered cell for colouring at render time.
type Highlight uint8

const (
	HLNormal Highlight = iota
	HLComment
	HLKeyword1
	HLKeyword2
	HLString
	HLNumber
	HLMatch
)

// Row is one logical line of the document: the raw bytes the user typed
// (chars), their tab-expanded screen form (render), and a highlight code
// per rendered cell (hl). render and hl are regenerated together, from
// chars, by update — they must never be mutated independently except for
// the transient HLMatch overlay applied by incremental find and the
// explorer's selection marker on its own modal rows.
type Row struct {
	chars []byte
	render []byte
	hl     []Highlight

	// openComment is set when an unterminated block comment (per the
	// active SyntaxRule's BlockCommentStart/End) is still open at the end
	// of this row's render. It only affects highlighting of the row
	// below. See SPEC_FULL.md §3.
	openComment bool
}

// NewRow builds a Row from raw line bytes and immediately computes its
// render/hl form against syntax (which may be nil).
func NewRow(chars []byte, syntax *SyntaxRule, prevOpenComment bool) *Row {
	r := &Row{chars: append([]byte(nil), chars...)}
	r.update(syntax, prevOpenComment)
	return r
}

// Chars returns the row's logical bytes. Callers must not mutate the
// returned slice.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the row's tab-expanded screen bytes. Callers must not
// mutate the returned slice.
func (r *Row) Render() []byte { return r.render }

// Highlights returns the per-cell highlight codes, parallel to Render().
func (r *Row) Highlights() []Highlight { return r.hl }

// OpenComment reports whether an unterminated block comment is open at
// the end of this row.
func (r *Row) OpenComment() bool { return r.openComment }

// Len reports the number of logical bytes (== len(r.chars)).
func (r *Row) Len() int { return len(r.chars) }

// update recomputes render from chars via tab expansion and then
// rehighlights the row. This is the single atomic step spec.md §3's
// invariant (|hl| == |render|) depends on: the two slices are always
// replaced together.
func (r *Row) update(syntax *SyntaxRule, prevOpenComment bool) {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}
	r.render = make([]byte, 0, len(r.chars)+tabs*(TabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			r.render = append(r.render, ' ')
			for len(r.render)%TabStop != 0 {
				r.render = append(r.render, ' ')
			}
		} else {
			r.render = append(r.render, c)
		}
	}
	r.hl, r.openComment = highlightRow(r.render, syntax, prevOpenComment)
}

// InsertChar inserts byte b at position at (clamped to [0, len(chars)])
// and recomputes render/hl.
func (r *Row) InsertChar(at int, b byte, syntax *SyntaxRule, prevOpenComment bool) {
	if at < 0 {
		at = 0
	} else if at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:len(r.chars)-1])
	r.chars[at] = b
	r.update(syntax, prevOpenComment)
}

// DeleteChar removes the byte at position at, a no-op outside
// [0, len(chars)).
func (r *Row) DeleteChar(at int, syntax *SyntaxRule, prevOpenComment bool) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.update(syntax, prevOpenComment)
}

// AppendBytes appends s to the row's chars and recomputes render/hl.
func (r *Row) AppendBytes(s []byte, syntax *SyntaxRule, prevOpenComment bool) {
	r.chars = append(r.chars, s...)
	r.update(syntax, prevOpenComment)
}

// TruncateAt cuts the row down to its first at bytes and recomputes
// render/hl; used when splitting a row on newline insertion.
func (r *Row) TruncateAt(at int, syntax *SyntaxRule, prevOpenComment bool) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = r.chars[:at]
	r.update(syntax, prevOpenComment)
}

// CxToRx converts a logical byte offset into chars to a rendered column,
// per spec.md §4.1: TAB advances to the next TabStop boundary, any other
// byte advances by one cell.
func (r *Row) CxToRx(cx int) int {
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	rx := 0
	for j := 0; j < cx; j++ {
		if r.chars[j] == '\t' {
			rx += TabStop - (rx % TabStop)
		} else {
			rx++
		}
	}
	return rx
}

// RxToCx is the inverse of CxToRx: the cx of the byte whose rendered
// cells cover column rx (the smallest cx with CxToRx(cx+1) > rx), or
// len(chars) if rx is past the end of the row.
func (r *Row) RxToCx(rx int) int {
	curRx := 0
	var cx int
	for cx = 0; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			curRx += TabStop - (curRx % TabStop)
		} else {
			curRx++
		}
		if curRx > rx {
			return cx
		}
	}
	return cx
}
