package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/dreamai-cli/internal/ports"
)

// Toast prints one-line notifications, the terminal counterpart of a
// transient pop-up.
type Toast struct {
	out    io.Writer
	styles styles
	mu     sync.Mutex
}

var _ ports.Notifier = (*Toast)(nil)

func NewToast(out io.Writer) *Toast {
	return &Toast{out: out, styles: newStyles()}
}

func (t *Toast) Success(message string) {
	t.write(t.styles.success.Render("✔"), message)
}

func (t *Toast) Error(message string) {
	t.write(t.styles.failure.Render("✖"), message)
}

func (t *Toast) write(icon, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(t.out, "%s %s\n", icon, message)
}
