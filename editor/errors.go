package editor

import "github.com/pkg/errors"

// The error kinds named in spec.md §7. Go's error values don't need a
// closed kind enum, but the sentinels let callers select recovery
// behaviour with errors.Is without depending on message text.
var (
	// ErrTerminalSetup marks a failure to query or mutate terminal
	// attributes, or to determine window size. Fatal.
	ErrTerminalSetup = errors.New("terminal setup failed")

	// ErrLoad marks a failure to open a file at startup. Fatal.
	ErrLoad = errors.New("could not load file")

	// ErrSave marks a failure to open/truncate/write on save. Non-fatal:
	// the buffer is retained, dirty stays set, and the caller shows an
	// error message in the status bar.
	ErrSave = errors.New("could not save file")
)
