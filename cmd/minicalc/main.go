package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/minicalc"
)

const name = "minicalc"

var errUsage = errors.New("usage")

type config struct {
	expr    string
	sample  string
	samples bool
	tokens  bool
	ast     bool
	args    []string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.expr, "e", "", "evaluate `source` instead of reading a file")
	fs.StringVar(&cfg.sample, "sample", "", "run the bundled sample `name`")
	fs.BoolVar(&cfg.samples, "samples", false, "list bundled samples")
	fs.BoolVar(&cfg.tokens, "tokens", false, "print the token stream")
	fs.BoolVar(&cfg.ast, "ast", false, "print the parsed expression")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] [file]\n", name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.args = fs.Args()
	if len(cfg.args) > 1 || (len(cfg.args) == 1 && (cfg.expr != "" || cfg.sample != "")) {
		fs.Usage()
		return nil, errUsage
	}
	return &cfg, nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, name+": ", 0)
}

func repl(in io.Reader, out io.Writer, logger *log.Logger) {
	env := minicalc.NewEnv(out)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := env.RunString(line); err != nil {
			logger.Print(err)
		}
	}
}

// source picks the program text from -e, -sample, a file argument or stdin.
func source(cfg *config, stdin io.Reader) (string, error) {
	switch {
	case cfg.expr != "":
		return cfg.expr, nil
	case cfg.sample != "":
		return minicalc.LoadSample(cfg.sample)
	case len(cfg.args) == 1:
		b, err := os.ReadFile(cfg.args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func run(cfg *config, src string, out io.Writer) error {
	if cfg.tokens {
		toks, err := minicalc.Tokenize(src)
		if err != nil {
			return err
		}
		for _, tok := range toks {
			fmt.Fprintf(out, "%d\t%v\n", tok.Line, tok)
		}
		return nil
	}

	node, err := minicalc.ParseString(src)
	if err != nil {
		return err
	}
	if cfg.ast {
		fmt.Fprintln(out, node)
		return nil
	}
	_, err = minicalc.NewEnv(out).Exec(node)
	return err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	logger := newLogger(stderr)

	if cfg.samples {
		names, err := minicalc.Samples()
		if err != nil {
			logger.Print(err)
			return 1
		}
		for _, n := range names {
			fmt.Fprintln(stdout, n)
		}
		return 0
	}

	if cfg.expr == "" && cfg.sample == "" && len(cfg.args) == 0 && isTerminal(stdin) {
		repl(stdin, stdout, logger)
		return 0
	}

	src, err := source(cfg, stdin)
	if err != nil {
		logger.Print(err)
		return 1
	}
	if err := run(cfg, src, stdout); err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
