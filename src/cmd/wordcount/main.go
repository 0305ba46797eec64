package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"gitlab.com/pnathan/wordcount/src/lib/log"
	"gitlab.com/pnathan/wordcount/src/lib/wordcount"
)

func Moan(complaint error) {
	log.Fatal("wordcount failed", zap.Error(complaint))
	os.Exit(1)
}

// splitArgs separates file paths from options, since argparse rejects any
// argument it has no definition for. Everything after "--" is a path.
func splitArgs(args []string) (options []string, paths []string) {
	if len(args) == 0 {
		return nil, nil
	}
	options = []string{args[0]}
	paths = []string{}
	for i := 1; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			paths = append(paths, args[i+1:]...)
			break
		}
		if len(a) > 1 && strings.HasPrefix(a, "-") {
			options = append(options, a)
			continue
		}
		paths = append(paths, a)
	}
	return options, paths
}

// run counts stdin when no paths are given, otherwise every path in order,
// and writes the report only once all input has been read.
func run(paths []string, stdin io.Reader, stdout io.Writer) error {
	counter := wordcount.NewCounter()
	if len(paths) == 0 {
		log.Debug("reading standard input")
		if err := counter.Process(stdin); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
	} else if err := counter.ProcessFiles(paths); err != nil {
		return err
	}

	log.Debug("counting done", zap.Uint64("tokens", counter.Tokens()), zap.Int("distinct", counter.Distinct()))
	if err := counter.Report(stdout); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func main() {
	parser := argparse.NewParser("wordcount", "counts the words of stdin or the given files, printed in lexicographic order")

	verbose := parser.Flag("v", "verbose", &argparse.Options{Required: false, Help: "log progress to stderr"})

	options, paths := splitArgs(os.Args)
	err := parser.Parse(options)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	log.SetVerbose(*verbose)
	defer log.Sync()

	if err := run(paths, os.Stdin, os.Stdout); err != nil {
		Moan(err)
	}
}
