package main

import (
	"io"

	"github.com/jcorbin/pcalc/internal/flushio"
	"golang.org/x/term"
)

// SessionOption customizes a Session built by New.
type SessionOption interface{ apply(s *Session) }

// SessionOptions applies several options in order.
type SessionOptions []SessionOption

func (opts SessionOptions) apply(s *Session) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(s)
		}
	}
}

var defaultOptions = SessionOptions{
	withOutput(io.Discard),
	withErrors(io.Discard),
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(s *Session) {
	s.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type errorsOption struct{ io.Writer }
type interactiveOption bool
type settingsOption Settings
type notationOption Notation
type baseOption Base
type limitOption int
type answerOption int32

func withInput(r io.Reader) inputOption             { return inputOption{r} }
func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withErrors(w io.Writer) errorsOption           { return errorsOption{w} }
func withInteractive(is bool) interactiveOption     { return interactiveOption(is) }
func withSettings(settings Settings) settingsOption { return settingsOption(settings) }
func withNotation(n Notation) notationOption        { return notationOption(n) }
func withBase(b Base) baseOption                    { return baseOption(b) }
func withLimit(limit int) limitOption               { return limitOption(limit) }
func withAnswer(ans int32) answerOption             { return answerOption(ans) }

func (i inputOption) apply(s *Session) {
	if len(s.in.Queue) == 0 {
		s.interactive = isTerminal(i.Reader)
	} else {
		s.interactive = false
	}
	s.in.Queue = append(s.in.Queue, i.Reader)
}

func (o outputOption) apply(s *Session) {
	if s.out != nil {
		s.out.Flush()
	}
	s.out = flushio.NewWriteFlusher(o.Writer)
}

func (o errorsOption) apply(s *Session) {
	if s.errs != nil {
		s.errs.Flush()
	}
	s.errs = flushio.NewWriteFlusher(o.Writer)
}

func (is interactiveOption) apply(s *Session) { s.interactive = bool(is) }
func (set settingsOption) apply(s *Session)   { s.Settings = Settings(set) }
func (n notationOption) apply(s *Session)     { s.Notation = Notation(n) }
func (b baseOption) apply(s *Session)         { s.Output = Base(b) }
func (lim limitOption) apply(s *Session)      { s.eval.Limit = int(lim) }

func (ans answerOption) apply(s *Session) {
	val := int32(ans)
	s.ans = &val
}

// isTerminal reports whether r is a file attached to a terminal, in which
// case the session prompts for input.
func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
