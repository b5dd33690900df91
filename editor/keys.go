package editor

// Key is either a literal byte value (< 256) or one of the synthetic
// codes below for multi-byte sequences InputDecoder recognises.
type Key int

// KeyBackspace is the literal DEL byte; spec.md §4.5 notes it may
// arrive as either byte 127 or CTRL-H.
const KeyBackspace Key = 127

// Synthetic keys start at 1000 so they can never collide with a literal
// input byte (which is always < 256).
const (
	KeyArrowLeft Key = 1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// ctrlKey computes the control-key code for an ASCII letter, per
// spec.md §4.5: CTRL(k) = k & 0x1F.
func ctrlKey(c byte) Key {
	return Key(c & 0x1f)
}

// isControlByte reports whether b is a control byte (< 32) or DEL
// (127), per spec.md's separator/editing-key rules.
func isControlByte(b byte) bool {
	return b < 32 || b == 127
}
