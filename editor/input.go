package editor

import (
	"io"

	"github.com/kigoeditor/kigo/internal/term"
)

// reader is the narrow contract InputDecoder needs from a TerminalDriver:
// one blocking-with-timeout byte read, and one short poll used only to
// disambiguate an escape sequence.
type reader interface {
	ReadByte() (byte, error)
	TryReadByte() (byte, bool)
}

// InputDecoder turns the raw byte stream from a terminal into the
// logical Key events spec.md §4.5 defines.
type InputDecoder struct {
	r reader
}

// NewInputDecoder wraps a term.Driver (or anything satisfying reader,
// which test doubles use to feed canned sequences).
func NewInputDecoder(r reader) *InputDecoder {
	return &InputDecoder{r: r}
}

// NextKey blocks until one key event is available. A term.ErrTimeout
// from the underlying reader is passed through unchanged so the caller
// can distinguish "nothing happened yet" from a real I/O failure.
func (d *InputDecoder) NextKey() (Key, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b != 0x1b {
		return Key(b), nil
	}
	return d.decodeEscape(), nil
}

// decodeEscape is called once the ESC byte has already been consumed.
// It reads up to two further bytes with a short poll; if either read
// yields nothing, or the sequence isn't recognised, it returns a
// literal ESC, per spec.md §4.5.
func (d *InputDecoder) decodeEscape() Key {
	first, ok := d.r.TryReadByte()
	if !ok {
		return 0x1b
	}
	second, ok := d.r.TryReadByte()
	if !ok {
		return 0x1b
	}

	switch first {
	case '[':
		if second >= '0' && second <= '9' {
			third, ok := d.r.TryReadByte()
			if !ok || third != '~' {
				return 0x1b
			}
			switch second {
			case '1', '7':
				return KeyHome
			case '4', '8':
				return KeyEnd
			case '3':
				return KeyDelete
			case '5':
				return KeyPageUp
			case '6':
				return KeyPageDown
			}
			return 0x1b
		}
		switch second {
		case 'A':
			return KeyArrowUp
		case 'B':
			return KeyArrowDown
		case 'C':
			return KeyArrowRight
		case 'D':
			return KeyArrowLeft
		case 'H':
			return KeyHome
		case 'F':
			return KeyEnd
		}
	case 'O':
		switch second {
		case 'H':
			return KeyHome
		case 'F':
			return KeyEnd
		}
	}
	return 0x1b
}

var _ io.ByteReader = (*term.Driver)(nil)
