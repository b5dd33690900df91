package editor

import "fmt"

// helpBinding is one row of the generated key-binding reference; the
// controller's actual dispatch in controller.go is the source of
// truth, this table just documents it in one place. Nothing ties the
// two together; the table is kept in step with the dispatch by hand.
type helpBinding struct {
	combo string
	desc  string
}

var helpBindings = []helpBinding{
	{"Arrow Keys", "move cursor"},
	{"Page Up/Down", "scroll by screen"},
	{"Home/End", "move to line start/end"},
	{"Ctrl-S", "save file"},
	{"Ctrl-Q", "quit (press " + fmt.Sprint(quitTimes+1) + " times if unsaved)"},
	{"Backspace/Delete", "delete character"},
	{"Ctrl-F", "find (arrows to cycle matches, ESC to cancel)"},
	{"Ctrl-E", "open file explorer"},
	{"Ctrl-G", "show this help"},
	{"Ctrl-R", "redraw screen"},
}

// HelpScreen is the CTRL-G binding reference, a ModalScreen whose
// content is generated from helpBindings rather than hand-typed.
type HelpScreen struct {
	lines []string
}

func NewHelpScreen() *HelpScreen {
	lines := make([]string, 0, len(helpBindings)+4)
	lines = append(lines, fmt.Sprintf("kigo %s -- key bindings", Version))
	lines = append(lines, "")
	width := 0
	for _, b := range helpBindings {
		if len(b.combo) > width {
			width = len(b.combo)
		}
	}
	for _, b := range helpBindings {
		lines = append(lines, fmt.Sprintf("  %-*s  %s", width, b.combo, b.desc))
	}
	lines = append(lines, "")
	lines = append(lines, "Press 'q' or ESC to close.")
	return &HelpScreen{lines: lines}
}

func (h *HelpScreen) Content() []string { return h.lines }
func (h *HelpScreen) Title() string     { return "Help" }
func (h *HelpScreen) StatusMessage() string {
	return "Use arrow keys to scroll, 'q' or ESC to exit"
}

func (h *HelpScreen) Initialize(e *Editor) {
	e.view.Cy, e.view.RowOff = 0, 0
}

func (h *HelpScreen) HandleKey(key Key, e *Editor) (close bool, restore bool) {
	switch key {
	case 'q', 'Q', 0x1b:
		return true, true

	case Key(KeyArrowUp):
		e.view.MoveCursor(DirUp, e.doc)
	case Key(KeyArrowDown):
		e.view.MoveCursor(DirDown, e.doc)
	case Key(KeyPageUp):
		e.view.PageUp(e.doc)
	case Key(KeyPageDown):
		e.view.PageDown(e.doc)
	case Key(KeyHome):
		e.view.Home()
		e.view.Cy, e.view.RowOff = 0, 0
	case Key(KeyEnd):
		e.view.Cy = e.doc.RowCount() - 1
	}
	return false, false
}

// Help displays the CTRL-G key-binding reference.
func (e *Editor) Help() {
	NewModalManager(e, NewHelpScreen()).Show(ModeHelp)
}
