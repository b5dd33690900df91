package term

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadByteReturnsErrTimeoutWhenNothingArrives(t *testing.T) {
	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	defer inW.Close()
	defer inR.Close()

	d := New(inR, inR)

	_, err = d.ReadByte()
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestReadByteReturnsByteOnceWritten(t *testing.T) {
	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	defer inW.Close()
	defer inR.Close()

	d := New(inR, inR)

	go func() {
		time.Sleep(5 * time.Millisecond)
		inW.Write([]byte{'z'})
	}()

	b, err := d.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('z'), b)
}

func TestTryReadByteReportsFalseOnEmptyInput(t *testing.T) {
	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	defer inW.Close()
	defer inR.Close()

	d := New(inR, inR)

	_, ok := d.TryReadByte()
	assert.False(t, ok)
}
