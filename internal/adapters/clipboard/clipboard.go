package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bnema/dreamai-cli/internal/ports"
)

var ErrUnsupported = errors.New("clipboard is not available on this system")

// System writes to the desktop clipboard.
type System struct {
	unsupported bool
	write       func(string) error
}

var _ ports.Clipboard = (*System)(nil)

func NewSystem() *System {
	return &System{unsupported: clipboard.Unsupported, write: clipboard.WriteAll}
}

func (s *System) WriteAll(text string) error {
	if s.unsupported {
		return ErrUnsupported
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
