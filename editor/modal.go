package editor

// ModalScreen is a self-contained full-screen overlay (Explorer, Help)
// that temporarily takes over the main loop. Its rows render through the
// same Document/Viewport pipeline (drawRow) as the buffer; refreshScreen
// switches to drawModal only for the surrounding title and message bars.
type ModalScreen interface {
	// Content returns the lines to display, one Row per line.
	Content() []string
	// Title is shown in place of the filename in the status bar.
	Title() string
	// StatusMessage is shown in the message bar while the screen is active.
	StatusMessage() string
	// HandleKey processes one key. close reports whether the screen is
	// done; restore reports whether the editor should return to the
	// Document/Viewport that was active before the screen opened (false
	// lets the screen leave new state in place). Explorer opens a file by
	// loading it into that saved Document and returns restore=true.
	HandleKey(key Key, e *Editor) (close bool, restore bool)
	// Initialize sets up the initial cursor position once the screen's
	// content has been installed.
	Initialize(e *Editor)
}

// modalState is the pre-modal Document/Viewport/Mode, saved so a
// cancelled modal screen can hand the editor back exactly where the
// user left off.
type modalState struct {
	doc  *Document
	view *Viewport
	mode Mode
}

// ModalManager drives one modal screen's interaction loop: install its
// content, run Initialize, then alternate render/HandleKey until the
// screen reports it's done.
type ModalManager struct {
	editor *Editor
	screen ModalScreen
	saved  modalState
}

// NewModalManager captures the editor's current state before screen
// takes over.
func NewModalManager(e *Editor, screen ModalScreen) *ModalManager {
	return &ModalManager{
		editor: e,
		screen: screen,
		saved:  modalState{doc: e.doc, view: e.view, mode: e.mode},
	}
}

// newModalDocument builds a throwaway, unsyntaxed Document from plain
// text lines, bypassing Document's public mutators (and their dirty
// bookkeeping) since modal content is never saved.
func newModalDocument(lines []string) *Document {
	d := &Document{rows: make([]*Row, len(lines))}
	for i, line := range lines {
		d.rows[i] = NewRow([]byte(line), nil, false)
	}
	return d
}

// Show installs screen's content, runs its interaction loop, and
// restores the prior Document/Viewport unless the screen's own
// HandleKey already said not to.
func (m *ModalManager) Show(mode Mode) {
	e := m.editor
	e.savedModalState = &m.saved

	e.doc = newModalDocument(m.screen.Content())
	e.view = NewViewport(e.termRows, e.termCols)
	e.mode = mode
	e.modalTitle = m.screen.Title()
	e.SetStatusMessage("%s", m.screen.StatusMessage())

	m.screen.Initialize(e)

	for {
		e.refreshScreen()
		key, ok := e.nextKey()
		if !ok {
			continue
		}
		close, restore := m.screen.HandleKey(key, e)
		if !close {
			continue
		}
		if restore {
			e.doc = m.saved.doc
			e.view = m.saved.view
		}
		e.mode = m.saved.mode
		e.savedModalState = nil
		e.SetStatusMessage("Returned to editor")
		return
	}
}
