package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWriteAll(t *testing.T) {
	var got string
	s := &System{write: func(text string) error {
		got = text
		return nil
	}}

	require.NoError(t, s.WriteAll("https://x/y.png"))
	assert.Equal(t, "https://x/y.png", got)
}

func TestSystemWriteAllUnsupported(t *testing.T) {
	s := &System{unsupported: true, write: func(string) error {
		t.Fatal("write must not be called")
		return nil
	}}

	assert.ErrorIs(t, s.WriteAll("x"), ErrUnsupported)
}

func TestSystemWriteAllWrapsError(t *testing.T) {
	boom := errors.New("no display")
	s := &System{write: func(string) error { return boom }}

	err := s.WriteAll("x")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "write clipboard")
}
