package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
)

// Notation selects how expressions are read.
type Notation int

// Notations; infix is the default.
const (
	Infix Notation = iota
	Postfix
	Prefix
)

var notationNames = [...]string{
	Infix:   "infix",
	Postfix: "postfix",
	Prefix:  "prefix",
}

func (n Notation) String() string {
	if int(n) >= 0 && int(n) < len(notationNames) {
		return notationNames[n]
	}
	return fmt.Sprintf("Notation(%d)", int(n))
}

// Base selects how results are written.
type Base int

// Output bases; decimal is the default.
const (
	Decimal Base = iota
	Hex
)

var baseNames = [...]string{
	Decimal: "decimal",
	Hex:     "hex",
}

func (b Base) String() string {
	if int(b) >= 0 && int(b) < len(baseNames) {
		return baseNames[b]
	}
	return fmt.Sprintf("Base(%d)", int(b))
}

// Settings are the user preferences persisted in the settings file.
type Settings struct {
	Notation Notation
	Output   Base
}

const configName = ".pcalc"

// ConfigPath returns the settings file location: .pcalc in the user's home
// directory, or in the working directory when HOME is not set. The file
// need not exist.
func ConfigPath() string {
	if dir := os.Getenv("HOME"); dir != "" {
		return filepath.Join(dir, configName)
	}
	return configName
}

// LoadSettings reads settings from the named file over the defaults.
// Problems are logged as warnings and never prevent startup.
func LoadSettings(path string) (s Settings) {
	f, err := os.Open(path)
	if err != nil {
		log.Warnf("Error while opening settings file: %v", err)
		return s
	}
	defer f.Close()

	problems, err := s.Parse(f)
	for _, problem := range problems {
		log.Warnf("settings file %v", problem)
	}
	if err != nil {
		log.Warnf("Error while reading settings file: %v", err)
	}
	return s
}

type settingsLineError struct {
	line int
	err  error
}

func (sle settingsLineError) Error() string { return fmt.Sprintf("line %v: %v", sle.line, sle.err) }
func (sle settingsLineError) Unwrap() error { return sle.err }

// Parse applies every directive read from r. Each directive is one line
// "notation infix|postfix|prefix" or "output decimal|hex"; blank lines and
// lines starting with # are ignored. Invalid lines are skipped and returned
// as problems; err is only non-nil if reading failed.
func (s *Settings) Parse(r io.Reader) (problems []error, err error) {
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		if perr := s.parseLine(sc.Text()); perr != nil {
			problems = append(problems, settingsLineError{lineno, perr})
		}
	}
	return problems, sc.Err()
}

var (
	errNoArgument       = errors.New("missing argument")
	errTooManyArguments = errors.New("too many arguments")
)

func (s *Settings) parseLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("%q: %w", fields[0], errNoArgument)
	} else if len(fields) > 2 {
		return fmt.Errorf("%q: %w", fields[0], errTooManyArguments)
	}

	switch cmd, arg := fields[0], fields[1]; cmd {
	case "notation":
		n, err := parseNotation(arg)
		if err != nil {
			return err
		}
		s.Notation = n
	case "output":
		b, err := parseBase(arg)
		if err != nil {
			return err
		}
		s.Output = b
	default:
		return fmt.Errorf("unknown setting %q", cmd)
	}
	return nil
}

func parseNotation(arg string) (Notation, error) {
	for n, name := range notationNames {
		if arg == name {
			return Notation(n), nil
		}
	}
	return 0, fmt.Errorf("invalid notation %q", arg)
}

func parseBase(arg string) (Base, error) {
	for b, name := range baseNames {
		if arg == name {
			return Base(b), nil
		}
	}
	return 0, fmt.Errorf("invalid output base %q", arg)
}

// WriteTo writes the settings in the form read by Parse.
func (s Settings) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "notation %v\noutput %v\n", s.Notation, s.Output)
	return int64(n), err
}
