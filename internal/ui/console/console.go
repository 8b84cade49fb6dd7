package console

import (
	"context"
	"io"
	"os"

	"github.com/mediasearch/mediasearch-cli/internal/search"
)

// Searcher is the part of search.Client the console needs.
type Searcher interface {
	Search(ctx context.Context, query string) ([]search.Page, error)
}

type ConsoleUI struct {
	s         Searcher
	in        io.Reader
	out       io.Writer
	keepGoing bool
}

func NewConsoleUI(s Searcher) *ConsoleUI {
	return &ConsoleUI{s: s, in: os.Stdin, out: os.Stdout}
}

// SetIO redirects the prompt input and the result output.
func (c *ConsoleUI) SetIO(in io.Reader, out io.Writer) *ConsoleUI {
	c.in, c.out = in, out
	return c
}

// SetKeepGoing makes a failed search log and continue instead of ending the loop.
func (c *ConsoleUI) SetKeepGoing(v bool) *ConsoleUI {
	c.keepGoing = v
	return c
}
