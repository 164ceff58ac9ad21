package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/log"
)

func main() {
	ctx := context.Background()

	flag.Usage = usage
	cli, err := parseFlags(flag.CommandLine, os.Args[1:], LoadSettings(ConfigPath()))
	if err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "%v\n", err)
		usage()
		os.Exit(2)
	}

	if cli.printPath {
		fmt.Println(ConfigPath())
		return
	}
	if cli.printSettings {
		if _, err := cli.WriteTo(os.Stdout); err != nil {
			log.Fatalf("writing settings: %v", err)
		}
		return
	}

	var opts = []SessionOption{
		WithSettings(cli.Settings),
		WithOutput(os.Stdout),
		WithErrors(os.Stderr),
	}
	if cli.trace {
		log.SetLogLevel(log.Verbose)
		opts = append(opts, WithLogf(log.LogVf))
	}
	if cli.limit != 0 {
		opts = append(opts, WithLimit(cli.limit))
	}

	if cli.expr != "" {
		if err := New(opts...).Once(cli.expr); err != nil {
			os.Exit(1)
		}
		return
	}

	if len(cli.files) == 0 {
		opts = append(opts, WithInput(os.Stdin))
	}
	for _, name := range cli.files {
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("%v", err)
		}
		opts = append(opts, WithInput(f))
	}

	s := New(opts...)
	if err := s.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
	os.Exit(s.ExitCode())
}

func usage() {
	out := flag.CommandLine.Output()
	io.WriteString(out, "Usage: pcalc [<option>...]\n"+
		"       pcalc [<option>...] <expression>\n"+
		"\n")
	flag.PrintDefaults()
}

// cliFlags is the parsed command line: settings from the dotfile as
// overridden by flags, plus any one-shot expression.
type cliFlags struct {
	Settings

	printPath     bool
	printSettings bool
	trace         bool
	limit         int
	files         fileList
	expr          string
}

var errFilesWithExpr = errors.New("-f may not be combined with an expression argument")

// parseFlags parses args over the given settings, so that flags override
// the settings file.
func parseFlags(fs *flag.FlagSet, args []string, settings Settings) (cli cliFlags, err error) {
	cli.Settings = settings
	fs.Var(choice(&cli.Notation, Infix), "i", "infix notation (default)")
	fs.Var(choice(&cli.Notation, Postfix), "r", "postfix notation (rpn)")
	fs.Var(choice(&cli.Notation, Prefix), "p", "prefix notation")
	fs.Var(choice(&cli.Output, Decimal), "d", "decimal output (default)")
	fs.Var(choice(&cli.Output, Hex), "x", "hexadecimal output")
	fs.BoolVar(&cli.printPath, "c", false, "print config path and exit")
	fs.BoolVar(&cli.printSettings, "w", false, "print settings and exit")
	fs.Var(&cli.files, "f", "read expressions from `file` instead of stdin; may be repeated")
	fs.BoolVar(&cli.trace, "trace", false, "enable trace logging")
	fs.IntVar(&cli.limit, "limit", 0, "limit evaluation stacks to `n` elements")
	if err := fs.Parse(args); err != nil {
		return cli, err
	}

	cli.expr = strings.Join(fs.Args(), " ")
	if cli.expr != "" && len(cli.files) > 0 {
		return cli, errFilesWithExpr
	}
	return cli, nil
}

// choiceFlag is a boolean flag that stores a fixed value when set, so that
// the last of several mutually exclusive flags wins.
type choiceFlag[T any] struct {
	p   *T
	val T
}

func choice[T any](p *T, val T) choiceFlag[T] { return choiceFlag[T]{p, val} }

func (cf choiceFlag[T]) IsBoolFlag() bool { return true }
func (cf choiceFlag[T]) String() string   { return "" }

func (cf choiceFlag[T]) Set(s string) error {
	set, err := strconv.ParseBool(s)
	if err == nil && set {
		*cf.p = cf.val
	}
	return err
}

type fileList []string

func (fl *fileList) String() string {
	if fl == nil {
		return ""
	}
	return strings.Join(*fl, ",")
}

func (fl *fileList) Set(name string) error {
	*fl = append(*fl, name)
	return nil
}
