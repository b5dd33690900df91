package editor

import (
	"strings"

	"github.com/kigoeditor/kigo/internal/filestore"
)

// Document is the ordered sequence of Rows that make up the file being
// edited, plus the bookkeeping (dirty counter, filename, chosen syntax)
// spec.md §3 assigns to it. All row-level mutation goes through
// Document so the dirty counter and the open-comment cascade in §4.3
// stay correct.
type Document struct {
	rows     []*Row
	dirty    int
	filename string
	syntax   *SyntaxRule
}

// NewDocument returns an empty, unnamed Document.
func NewDocument() *Document {
	return &Document{}
}

// Rows returns the document's rows. Callers must not mutate the slice.
func (d *Document) Rows() []*Row { return d.rows }

// RowCount returns the number of rows.
func (d *Document) RowCount() int { return len(d.rows) }

// Row returns the row at index i, or nil if i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// Dirty reports the mutation counter: 0 means the document matches what
// was last loaded or saved.
func (d *Document) Dirty() int { return d.dirty }

// Filename returns the document's associated filename, or "" if unset.
func (d *Document) Filename() string { return d.filename }

// Syntax returns the active SyntaxRule, or nil if none matched.
func (d *Document) Syntax() *SyntaxRule { return d.syntax }

// openCommentBefore reports whether the row before idx ends with an open
// block comment, the carry value a newly (re)highlighted row at idx
// needs.
func (d *Document) openCommentBefore(idx int) bool {
	if idx <= 0 || idx-1 >= len(d.rows) {
		return false
	}
	return d.rows[idx-1].OpenComment()
}

// rehighlightFrom recomputes highlighting for idx and, whenever a row's
// trailing open-comment state changes, cascades to the next row — the
// one cross-row dependency the single-line highlighter in spec.md §4.3
// carries, confined to block comments.
func (d *Document) rehighlightFrom(idx int) {
	for idx < len(d.rows) {
		row := d.rows[idx]
		before := row.OpenComment()
		row.update(d.syntax, d.openCommentBefore(idx))
		if row.OpenComment() == before {
			return
		}
		idx++
	}
}

// insertRowAt splices a new row built from bytes into position at
// without touching dirty; callers own the single dirty++ for their
// logical action.
func (d *Document) insertRowAt(at int, bytes []byte) {
	row := NewRow(bytes, d.syntax, d.openCommentBefore(at))
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = row
	d.rehighlightFrom(at + 1)
}

// deleteRowAt removes the row at position at without touching dirty.
func (d *Document) deleteRowAt(at int) {
	d.rows = append(d.rows[:at], d.rows[at+1:]...)
	d.rehighlightFrom(at)
}

// InsertRow inserts a new row built from bytes at position at, a no-op
// outside [0, RowCount()], and increments dirty once.
func (d *Document) InsertRow(at int, bytes []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}
	d.insertRowAt(at, bytes)
	d.dirty++
}

// DeleteRow removes the row at position at, a no-op outside
// [0, RowCount()), and increments dirty once.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	d.deleteRowAt(at)
	d.dirty++
}

// InsertChar inserts byte b at (cy, cx). If cy is the phantom row past
// EOF, a new empty row is appended first, per spec.md §4.2. The whole
// call is one logical action: dirty advances by exactly one.
func (d *Document) InsertChar(cy, cx int, b byte) {
	if cy == len(d.rows) {
		d.insertRowAt(len(d.rows), nil)
	}
	row := d.rows[cy]
	row.InsertChar(cx, b, d.syntax, d.openCommentBefore(cy))
	d.rehighlightFrom(cy + 1)
	d.dirty++
}

// DeleteChar implements the backspace semantics of spec.md §4.2: a
// no-op at (0,0) or past EOF, otherwise either deletes the byte before
// cx or, at the start of a row, merges the row into its predecessor.
// It returns the resulting (cy, cx); dirty advances by exactly one.
func (d *Document) DeleteChar(cy, cx int) (int, int) {
	if cy >= len(d.rows) {
		return cy, cx
	}
	if cx == 0 && cy == 0 {
		return cy, cx
	}
	row := d.rows[cy]
	if cx > 0 {
		row.DeleteChar(cx-1, d.syntax, d.openCommentBefore(cy))
		d.rehighlightFrom(cy + 1)
		d.dirty++
		return cy, cx - 1
	}
	prev := d.rows[cy-1]
	newCx := prev.Len()
	prev.AppendBytes(row.Chars(), d.syntax, d.openCommentBefore(cy-1))
	d.deleteRowAt(cy)
	d.dirty++
	return cy - 1, newCx
}

// InsertNewline implements spec.md §4.2's split semantics and returns
// the resulting (cy, cx), always (oldCy+1, 0). dirty advances by
// exactly one.
func (d *Document) InsertNewline(cy, cx int) (int, int) {
	if cx == 0 {
		d.insertRowAt(cy, nil)
		d.dirty++
		return cy + 1, 0
	}
	row := d.rows[cy]
	remainder := append([]byte(nil), row.Chars()[cx:]...)
	d.insertRowAt(cy+1, remainder)
	// insertRowAt may have reallocated d.rows; re-fetch before truncating.
	d.rows[cy].TruncateAt(cx, d.syntax, d.openCommentBefore(cy))
	d.rehighlightFrom(cy + 1)
	d.dirty++
	return cy + 1, 0
}

// RowsToBytes concatenates each row's chars followed by a single '\n',
// the serialized form Save writes to disk (spec.md §4.2).
func (d *Document) RowsToBytes() []byte {
	var buf strings.Builder
	total := 0
	for _, row := range d.rows {
		total += row.Len() + 1
	}
	buf.Grow(total)
	for _, row := range d.rows {
		buf.Write(row.Chars())
		buf.WriteByte('\n')
	}
	return []byte(buf.String())
}

// Load replaces the document's rows with the contents of filename and
// resets dirty to 0. The filename's extension selects a SyntaxRule
// before any row is inserted, so every row is highlighted once.
func (d *Document) Load(filename string) error {
	lines, err := filestore.Load(filename)
	if err != nil {
		return err
	}
	d.filename = filename
	d.rows = nil
	d.syntax = SelectSyntax(filename)
	for _, line := range lines {
		d.InsertRow(len(d.rows), []byte(line))
	}
	d.dirty = 0
	return nil
}

// Save writes the document to filename (or, if filename is "", to the
// document's current filename) and resets dirty to 0 on success. It
// returns the number of bytes written.
func (d *Document) Save(filename string) (int, error) {
	if filename != "" && filename != d.filename {
		d.filename = filename
		d.SelectSyntax()
	}
	n, err := filestore.Save(d.filename, d.RowsToBytes())
	if err != nil {
		return 0, err
	}
	d.dirty = 0
	return n, nil
}

// SelectSyntax re-derives the active SyntaxRule from the document's
// current filename and rehighlights every row — the one case in
// spec.md §4.3 where highlighting is not confined to a single row.
func (d *Document) SelectSyntax() {
	d.syntax = SelectSyntax(d.filename)
	for i := range d.rows {
		before := d.openCommentBefore(i)
		d.rows[i].update(d.syntax, before)
	}
}
