package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenAndErrorfDoNotPanic(t *testing.T) {
	l := Open()
	defer l.Close()

	assert.NotPanics(t, func() {
		l.Errorf("something went wrong: %d", 42)
	})
}

func TestNilLoggerErrorfIsSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Errorf("unused: %v", "x")
	})
}
