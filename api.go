package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/pcalc/internal/panicerr"
)

// New creates a Session; without options it reads nothing and discards all
// output.
func New(opts ...SessionOption) *Session {
	var s Session
	defaultOptions.apply(&s)
	SessionOptions(opts).apply(&s)
	return &s
}

// Run reads and evaluates expressions until the input is exhausted, the
// user quits, or ctx is done. Failed evaluations are reported and do not
// stop the session; only input or output failures are returned.
func (s *Session) Run(ctx context.Context) error {
	defer s.in.Close()
	err := panicerr.Recover("session", func() error {
		return s.run(ctx)
	})
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return err
}

// WithInput queues an input stream; streams are read in the order given.
// A terminal given as the only input makes the session interactive.
func WithInput(r io.Reader) SessionOption { return withInput(r) }

// WithOutput sets where results and prompts are written.
func WithOutput(w io.Writer) SessionOption { return withOutput(w) }

// WithErrors sets where diagnostics are written.
func WithErrors(w io.Writer) SessionOption { return withErrors(w) }

// WithInteractive overrides terminal detection.
func WithInteractive(is bool) SessionOption { return withInteractive(is) }

func WithSettings(settings Settings) SessionOption { return withSettings(settings) }
func WithNotation(n Notation) SessionOption         { return withNotation(n) }
func WithOutputBase(b Base) SessionOption           { return withBase(b) }
func WithLimit(limit int) SessionOption             { return withLimit(limit) }
func WithLastAnswer(ans int32) SessionOption        { return withAnswer(ans) }

func WithLogf(logfn func(mess string, args ...interface{})) SessionOption { return withLogfn(logfn) }
