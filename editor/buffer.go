package editor

import "fmt"

// frameBuffer is a short-lived growable byte sequence used to compose
// one terminal frame before a single write, spec.md's ByteBuffer (C1).
// It is scoped to a single refreshScreen call.
type frameBuffer struct {
	b []byte
}

func (fb *frameBuffer) writeString(s string) {
	fb.b = append(fb.b, s...)
}

func (fb *frameBuffer) writeByte(c byte) {
	fb.b = append(fb.b, c)
}

func (fb *frameBuffer) writeBytes(s []byte) {
	fb.b = append(fb.b, s...)
}

func (fb *frameBuffer) writeSGR(code int) {
	fmt.Fprintf(fb, "\x1b[%dm", code)
}

// Write satisfies io.Writer so fmt.Fprintf can target the buffer
// directly.
func (fb *frameBuffer) Write(p []byte) (int, error) {
	fb.b = append(fb.b, p...)
	return len(p), nil
}
