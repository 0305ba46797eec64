package wordcount

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"gitlab.com/pnathan/wordcount/src/lib/log"
	"gitlab.com/pnathan/wordcount/src/lib/utility/bst"
)

// Counter accumulates word counts across any number of input streams.
type Counter struct {
	tree *bst.Tree[string]
}

func NewCounter() *Counter {
	return &Counter{tree: bst.New[string]()}
}

// Process reads r to the end, then counts every whitespace separated token
// in the order it appears.
func (c *Counter) Process(r io.Reader) error {
	contents, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	for _, w := range strings.Fields(string(contents)) {
		c.tree.Increment(w)
	}
	return nil
}

func (c *Counter) ProcessFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	before := c.tree.Total()
	if err := c.Process(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("processed file", zap.String("filename", path), zap.Uint64("tokens", c.tree.Total()-before))
	return nil
}

// ProcessFiles counts every file in order, stopping at the first failure.
func (c *Counter) ProcessFiles(paths []string) error {
	for _, p := range paths {
		if err := c.ProcessFile(p); err != nil {
			return err
		}
	}
	return nil
}

// Report writes one "<word> <count>" line per distinct word, ascending.
func (c *Counter) Report(w io.Writer) error {
	out := bufio.NewWriter(w)
	var err error
	c.tree.Walk(func(e bst.Entry[string]) bool {
		_, err = fmt.Fprintf(out, "%s %d\n", e.Key, e.Count)
		return err == nil
	})
	if err != nil {
		return err
	}
	return out.Flush()
}

func (c *Counter) Entries() []bst.Entry[string] {
	return c.tree.Entries()
}

func (c *Counter) Distinct() int {
	return c.tree.Len()
}

func (c *Counter) Tokens() uint64 {
	return c.tree.Total()
}
