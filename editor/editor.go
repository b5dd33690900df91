// Package editor implements the kigo text buffer, incremental syntax
// highlighter, and screen render pipeline described in SPEC_FULL.md. It
// depends on internal/term for raw terminal I/O and internal/filestore
// for load/save, but owns no global state itself: an Editor value is
// constructed by the caller (normally cmd/kigo) and threaded through by
// reference, per SPEC_FULL.md §9.
package editor

import (
	"fmt"
	"os"
	"time"

	"github.com/kigoeditor/kigo/internal/diag"
)

// Driver is the full surface Editor needs from a terminal: window size,
// one atomic frame write, the restore/clear pair Die and quit use, and
// the byte-level reads InputDecoder drives. *term.Driver satisfies it;
// tests use a fake instead of touching a real terminal.
type Driver interface {
	Size() (rows, cols int, err error)
	Write(buf []byte) error
	Restore()
	ClearScreen()
	ReadByte() (byte, error)
	TryReadByte() (byte, bool)
}

// Version is the editor's version string, shown in the welcome banner
// and the help screen.
const Version = "1.0.0"

// quitTimes is how many consecutive CTRL-Q presses a dirty buffer
// requires before the editor actually exits, per spec.md §4.6.
const quitTimes = 3

// Mode selects which modal screen, if any, owns the main loop.
type Mode int

const (
	ModeEdit Mode = iota
	ModeExplorer
	ModeHelp
)

// Editor is the top-level value composing the buffer (Document), the
// cursor/scroll state (Viewport), and the I/O collaborators. It carries
// no package-level state; every field here used to live in a global
// struct in the teacher's program.
type Editor struct {
	doc  *Document
	view *Viewport

	driver  Driver
	decoder *InputDecoder
	diag    *diag.Logger

	mode              Mode
	modalTitle        string
	statusMessage     string
	statusMessageTime time.Time

	// termRows/termCols are the last-probed full terminal size, kept so a
	// modal screen can size its own Viewport independently of the
	// buffer's.
	termRows, termCols int

	pendingQuit int

	// savedModalState holds the pre-modal Document/Viewport so a modal
	// screen (Explorer, Help) can be dismissed back to exactly where the
	// user left off.
	savedModalState *modalState
}

// New constructs an Editor bound to driver for terminal I/O, sized for
// the driver's current window.
func New(driver Driver) (*Editor, error) {
	rows, cols, err := driver.Size()
	if err != nil {
		return nil, ErrTerminalSetup
	}
	e := &Editor{
		doc:      NewDocument(),
		view:     NewViewport(rows, cols),
		driver:   driver,
		decoder:  NewInputDecoder(driver),
		diag:     diag.Open(),
		mode:     ModeEdit,
		termRows: rows,
		termCols: cols,
	}
	return e, nil
}

// Document exposes the active buffer, mainly for tests.
func (e *Editor) Document() *Document { return e.doc }

// Viewport exposes cursor/scroll state, mainly for tests.
func (e *Editor) Viewport() *Viewport { return e.view }

// Open loads filename into the document, replacing any existing
// content, per spec.md §6.
func (e *Editor) Open(filename string) error {
	if err := e.doc.Load(filename); err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return nil
}

// SetStatusMessage formats and timestamps the message shown in the
// message bar for up to 5 seconds, per spec.md §3/§4.8.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}

// ShowError surfaces a non-fatal error in the status bar instead of
// dying, used by SaveError and similar recoverable failures.
func (e *Editor) ShowError(format string, args ...any) {
	e.SetStatusMessage("error: "+format, args...)
}

// Die is the single choke-point fatal errors go through: it restores
// the terminal, clears the screen, logs detail to the diagnostic file,
// prints a shallow message to stderr, and exits non-zero, per spec.md
// §7 and SPEC_FULL.md §7/§10.
func (e *Editor) Die(err error) {
	e.diag.Errorf("fatal: %+v", err)
	e.diag.Close()
	e.driver.Restore()
	e.driver.ClearScreen()
	fmt.Fprintf(os.Stderr, "kigo: %v\n", err)
	os.Exit(1)
}

// Save writes the document to its current filename, prompting for one
// first if none is set. A save failure is non-fatal: the buffer is
// retained and an error is shown, per spec.md §7.
func (e *Editor) Save() {
	filename := e.doc.Filename()
	if filename == "" {
		name, submitted := e.prompt("Save as: %s (ESC to cancel)", nil)
		if !submitted || len(name) == 0 {
			e.SetStatusMessage("Save aborted")
			return
		}
		filename = string(name)
	}
	n, err := e.doc.Save(filename)
	if err != nil {
		e.ShowError("can't save! %v", err)
		e.diag.Errorf("%+v", fmt.Errorf("%w: %v", ErrSave, err))
		return
	}
	e.SetStatusMessage("%d bytes written to disk", n)
}

// Redraw re-probes the window size and forces a full repaint, the
// CTRL-R binding described in SPEC_FULL.md §4.12.
func (e *Editor) Redraw() {
	rows, cols, err := e.driver.Size()
	if err != nil {
		e.ShowError("%v", err)
		return
	}
	e.termRows, e.termCols = rows, cols
	e.view.Resize(rows, cols)
	e.refreshScreen()
}
