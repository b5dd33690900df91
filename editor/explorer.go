package editor

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ExplorerScreen is the CTRL-E file browser: a ModalScreen listing the
// current directory, letting the user descend into subdirectories or
// open a file in place of the buffer, per SPEC_FULL.md §4.10.
type ExplorerScreen struct {
	currentDir   string
	files        []os.DirEntry
	hasParentDir bool
	lines        []string
}

// NewExplorerScreen lists startDir, or nil (with an error already shown)
// if it can't be read.
func NewExplorerScreen(e *Editor, startDir string) *ExplorerScreen {
	ex := &ExplorerScreen{currentDir: startDir}
	if err := ex.refresh(e); err != nil {
		e.ShowError("failed to read directory: %v", err)
		return nil
	}
	return ex
}

// refresh re-lists currentDir and rebuilds the display lines.
func (ex *ExplorerScreen) refresh(e *Editor) error {
	files, err := os.ReadDir(ex.currentDir)
	if err != nil {
		return err
	}
	ex.files = files
	ex.hasParentDir = ex.currentDir != "." && ex.currentDir != "/"
	ex.lines = ex.buildLines()
	return nil
}

// entryColumn pads an icon-prefixed entry label out to a fixed visual
// width so the trailing size annotation lines up, using go-runewidth
// because the folder/file icons are double-width runes that a
// byte-per-cell count would misjudge.
func entryColumn(label string, width int) string {
	w := runewidth.StringWidth(label)
	if w >= width {
		return label
	}
	return label + strings.Repeat(" ", width-w)
}

func (ex *ExplorerScreen) buildLines() []string {
	const labelColumn = 40

	lines := make([]string, 0, len(ex.files)+2)
	lines = append(lines, fmt.Sprintf("=== File Explorer: %s ===", ex.currentDir))

	if ex.hasParentDir {
		lines = append(lines, entryColumn("📂 .. (parent directory)", labelColumn))
	}

	for _, file := range ex.files {
		var label, size string
		if file.IsDir() {
			label = fmt.Sprintf("📁 %s/", file.Name())
		} else {
			label = fmt.Sprintf("📄 %s", file.Name())
			if info, err := file.Info(); err == nil {
				size = fmt.Sprintf("%d bytes", info.Size())
			}
		}
		lines = append(lines, entryColumn(label, labelColumn)+size)
	}
	return lines
}

func (ex *ExplorerScreen) Content() []string { return ex.lines }
func (ex *ExplorerScreen) Title() string     { return "File Explorer" }

func (ex *ExplorerScreen) StatusMessage() string {
	return fmt.Sprintf("%s - %d items (Enter=open/navigate, ESC/q=quit)", ex.currentDir, len(ex.files))
}

// firstEntryRow is the index of the first selectable line, the one right
// after the header; when shown, the parent-directory entry is that line.
func (ex *ExplorerScreen) firstEntryRow() int {
	if ex.hasParentDir {
		return 1
	}
	return 1
}

func (ex *ExplorerScreen) Initialize(e *Editor) {
	e.view.Cy = ex.firstEntryRow()
	ex.highlightSelection(e)
}

func (ex *ExplorerScreen) HandleKey(key Key, e *Editor) (close bool, restore bool) {
	switch key {
	case 'q', 'Q', 0x1b:
		return true, true

	case Key(KeyArrowUp), Key(KeyArrowDown):
		ex.navigate(key, e)
		ex.highlightSelection(e)

	case '\r':
		opened := ex.openSelected(e)
		if opened {
			return true, true
		}
		e.view.Cy = ex.firstEntryRow()
		e.view.RowOff = 0
		e.doc = newModalDocument(ex.lines)
		e.SetStatusMessage("%s", ex.StatusMessage())
	}
	return false, false
}

func (ex *ExplorerScreen) navigate(key Key, e *Editor) {
	maxRow := len(ex.files)
	if ex.hasParentDir {
		maxRow++
	}
	switch key {
	case Key(KeyArrowUp):
		if e.view.Cy > ex.firstEntryRow() {
			e.view.Cy--
		}
	case Key(KeyArrowDown):
		if e.view.Cy < maxRow {
			e.view.Cy++
		}
	}
}

// highlightSelection marks the currently selected line HLMatch and
// clears the previous mark, directly on the modal document's rows.
func (ex *ExplorerScreen) highlightSelection(e *Editor) {
	for i := 1; i < e.doc.RowCount(); i++ {
		row := e.doc.Row(i)
		for j := range row.hl {
			row.hl[j] = HLNormal
		}
	}
	if row := e.doc.Row(e.view.Cy); row != nil {
		for j := range row.hl {
			row.hl[j] = HLMatch
		}
	}
}

// openSelected opens the selected file or descends into the selected
// directory. It returns true only when a file was actually opened; the
// file is loaded into the saved pre-modal Document, which ModalManager
// then restores.
func (ex *ExplorerScreen) openSelected(e *Editor) bool {
	selected := e.view.Cy - 1

	if ex.hasParentDir && selected == 0 {
		ex.currentDir = parentOf(ex.currentDir)
		if err := ex.refresh(e); err != nil {
			e.ShowError("failed to read directory: %v", err)
		}
		return false
	}
	if ex.hasParentDir {
		selected--
	}
	if selected < 0 || selected >= len(ex.files) {
		return false
	}

	file := ex.files[selected]
	if file.IsDir() {
		ex.currentDir = joinPath(ex.currentDir, file.Name())
		if err := ex.refresh(e); err != nil {
			e.ShowError("failed to read directory: %v", err)
		}
		return false
	}

	if e.savedModalState.doc.Dirty() > 0 {
		e.SetStatusMessage("file has unsaved changes")
		return false
	}

	path := joinPath(ex.currentDir, file.Name())
	if err := e.savedModalState.doc.Load(path); err != nil {
		e.ShowError("failed to open file: %v", err)
		return false
	}
	e.savedModalState.view.Cx, e.savedModalState.view.Cy = 0, 0
	e.savedModalState.view.RowOff, e.savedModalState.view.ColOff = 0, 0
	return true
}

func parentOf(dir string) string {
	if dir == "." {
		return "."
	}
	if i := strings.LastIndex(dir, "/"); i != -1 {
		if dir[:i] == "" {
			return "."
		}
		return dir[:i]
	}
	return "."
}

func joinPath(dir, name string) string {
	if dir == "." {
		return name
	}
	return dir + "/" + name
}

// Explorer opens the CTRL-E file browser over the current buffer.
func (e *Editor) Explorer() {
	screen := NewExplorerScreen(e, ".")
	if screen == nil {
		return
	}
	NewModalManager(e, screen).Show(ModeExplorer)
}
