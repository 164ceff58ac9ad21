package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"fortio.org/log"

	"github.com/jcorbin/pcalc/internal/fileinput"
	"github.com/jcorbin/pcalc/internal/flushio"
	"github.com/jcorbin/pcalc/internal/panicerr"
	"github.com/jcorbin/pcalc/internal/pcalc"
)

// Session evaluates a series of expressions, carrying the last successful
// result forward as "ans". A Session is not safe for concurrent use.
type Session struct {
	logging
	Settings

	in   fileinput.Input
	out  flushio.WriteFlusher
	errs flushio.WriteFlusher

	interactive bool
	eval        pcalc.Evaluator
	ans         *int32
	failed      int
}

// LastAnswer returns the result of the last successful evaluation, if any.
func (s *Session) LastAnswer() (int32, bool) {
	if s.ans == nil {
		return 0, false
	}
	return *s.ans, true
}

// ExitCode returns a code to pass to os.Exit: non-zero if any evaluation
// failed outside of an interactive session.
func (s *Session) ExitCode() int {
	if s.failed > 0 && !s.interactive {
		return 1
	}
	return 0
}

// Eval evaluates one expression in the session's notation. On success the
// result becomes the new last answer; on failure the last answer is kept.
func (s *Session) Eval(expr string) (result int32, err error) {
	expr = strings.TrimRight(expr, "\r\n")
	err = panicerr.Recover("eval", func() (err error) {
		result, err = s.evaluate(expr)
		return err
	})
	if panicerr.IsPanic(err) {
		log.Errf("evaluating %q: %v\n%s", expr, err, panicerr.PanicStack(err))
	}
	if err != nil {
		s.failed++
		s.logf("%v %q -> %v", s.Notation, expr, err)
		return 0, err
	}

	s.logf("%v %q -> %v", s.Notation, expr, result)
	s.ans = &result
	return result, nil
}

func (s *Session) evaluate(expr string) (int32, error) {
	ev := s.eval
	if s.logfn != nil {
		defer s.withLogPrefix("\t")()
		ev.Logf = s.logfn
	}
	switch s.Notation {
	case Prefix:
		return ev.Linear(expr, true, s.ans)
	case Postfix:
		return ev.Linear(expr, false, s.ans)
	case Infix:
		return ev.Infix(expr, s.ans)
	}
	return 0, fmt.Errorf("invalid notation %v", s.Notation)
}

// Once evaluates a single expression, writing its result or diagnostic, and
// returns any evaluation error.
func (s *Session) Once(expr string) error {
	defer s.flush()
	_, err := s.evalLine(fileinput.Line{Text: expr})
	return err
}

func (s *Session) run(ctx context.Context) error {
	defer s.flush()

	if s.interactive {
		if _, err := io.WriteString(s.errs, "Type 'q' or 'quit' to exit\n"); err != nil {
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.prompt(); err != nil {
			return err
		}

		line, err := s.in.ReadLine()
		if err == io.EOF {
			if s.interactive {
				_, err = io.WriteString(s.out, "\n")
				return err
			}
			return nil
		} else if err != nil {
			return fmt.Errorf("reading input failed: %w", err)
		}

		switch strings.TrimSpace(line.Text) {
		case "":
			continue
		case "q", "quit":
			s.logf("quit at %v", line.Location)
			return nil
		}

		if _, ioErr := s.evalLine(line); ioErr != nil {
			return ioErr
		}
	}
}

// evalLine evaluates and reports one line; evalErr is the evaluation error
// while ioErr is any failure writing the report.
func (s *Session) evalLine(line fileinput.Line) (evalErr, ioErr error) {
	result, evalErr := s.Eval(line.Text)
	if evalErr != nil {
		where := ""
		if !s.interactive && line.Line > 0 {
			where = line.Location.String()
		}
		ioErr = writeError(s.errs, where, line.Text, evalErr)
		return evalErr, ioErr
	}
	_, ioErr = fmt.Fprintf(s.out, "%v\n", formatNumber(s.Output, result))
	return nil, ioErr
}

func (s *Session) prompt() error {
	if !s.interactive {
		return nil
	}
	if err := s.errs.Flush(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.out, "pcalc[%v]> ", promptMarks[s.Notation]); err != nil {
		return err
	}
	return s.out.Flush()
}

var promptMarks = map[Notation]string{
	Infix:   "i",
	Postfix: "r",
	Prefix:  "p",
}

func (s *Session) flush() {
	if err := s.out.Flush(); err != nil {
		log.Errf("flushing output: %v", err)
	}
	if err := s.errs.Flush(); err != nil {
		log.Errf("flushing diagnostics: %v", err)
	}
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}
