package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/mediasearch/mediasearch-cli/internal/logging"
	"github.com/mediasearch/mediasearch-cli/internal/search"
)

const Prompt = "Content to search$ "

type lineResult struct {
	line string
	err  error
}

// Run prompts, reads a line, searches and prints until input ends or ctx is
// canceled. A failed search ends the loop with its error unless keep-going
// is set; a non-2xx answer is only reported.
func (c *ConsoleUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, c.in)

	for {
		if _, err := fmt.Fprint(c.out, Prompt); err != nil {
			return err
		}
		var lr lineResult
		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(c.out)
			return nil
		case lr = <-lines:
		}

		eof := errors.Is(lr.err, io.EOF)
		if lr.err != nil && !eof {
			return pkgerrors.Wrap(lr.err, "read input")
		}
		if eof && lr.line == "" {
			_, _ = fmt.Fprintln(c.out)
			return nil
		}

		query := strings.TrimSuffix(strings.TrimSuffix(lr.line, "\n"), "\r")
		if err := c.RunSearchImperative(ctx, query); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !c.keepGoing {
				return err
			}
			logging.Error(err.Error())
		}
		if eof {
			return nil
		}
	}
}

// RunSearchImperative searches once and prints the results.
func (c *ConsoleUI) RunSearchImperative(ctx context.Context, query string) error {
	logging.Logger().Debug().Str("query", query).Msg("search")
	pages, err := c.s.Search(ctx, query)
	var se *search.StatusError
	if errors.As(err, &se) {
		logging.Error(fmt.Sprintf("Error encountered: statusCode: %d message: %s", se.Code, se.Body))
		return nil
	}
	if err != nil {
		return err
	}
	logging.Debug(fmt.Sprintf("received %d pages, %d items", len(pages), search.ItemCount(pages)))
	return Render(c.out, pages)
}

// readLines feeds lines from r until an error; the last result carries it.
func readLines(ctx context.Context, r io.Reader) <-chan lineResult {
	ch := make(chan lineResult)
	go func() {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			select {
			case ch <- lineResult{line: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}
