package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/sozercan/textlens/apimodels"
)

// Terminal is a Display that prints each update to a writer. It is safe for
// concurrent use and keeps the latest text of each node.
type Terminal struct {
	mu       sync.Mutex
	out      io.Writer
	provider string
	result   string
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) SetProvider(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.provider = text
	color.New(color.FgCyan, color.Bold).Fprintln(t.out, text)
}

func (t *Terminal) SetResult(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.result = text
	fmt.Fprintln(t.out, text)
}

// Provider returns the last provider text shown.
func (t *Terminal) Provider() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.provider
}

// Result returns the last result text shown.
func (t *Terminal) Result() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

// StaticForm is a Form with fixed values.
type StaticForm struct {
	Input string
	Opts  apimodels.AnalysisOptions
}

func (f StaticForm) Text() string                       { return f.Input }
func (f StaticForm) Options() apimodels.AnalysisOptions { return f.Opts }
