// Package filestore is the FileStore collaborator: plain-bytes load and
// save for a single file, with the line-ending and truncation contract
// spec.md §6 requires. It knows nothing about rows, cursors, or syntax.
package filestore

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// Load reads filename and returns its content split into lines with any
// trailing "\r" and "\n" stripped from each line, matching the load
// contract in spec.md §6.
func Load(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "filestore: opening %q", filename)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "filestore: reading %q", filename)
	}
	return lines, nil
}

// Save writes payload to filename, creating it with mode 0644 if it does
// not exist and truncating it to exactly len(payload) bytes, per
// spec.md §6. It returns the number of bytes written.
func Save(filename string, payload []byte) (int, error) {
	file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, errors.Wrapf(err, "filestore: opening %q for write", filename)
	}
	defer file.Close()

	if err := file.Truncate(int64(len(payload))); err != nil {
		return 0, errors.Wrapf(err, "filestore: truncating %q", filename)
	}

	n, err := file.Write(payload)
	if err != nil {
		return n, errors.Wrapf(err, "filestore: writing %q", filename)
	}
	if n != len(payload) {
		return n, errors.Errorf("filestore: partial write to %q: %d/%d bytes", filename, n, len(payload))
	}
	return n, nil
}
