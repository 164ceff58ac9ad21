package pcalc

import (
	"errors"
	"io"
)

// Evaluator evaluates expressions; the zero value is ready to use.
// An Evaluator holds no state between evaluations.
type Evaluator struct {
	// Limit bounds the number of elements any stack or queue may hold
	// during one evaluation; DefaultLimit is used when not positive.
	Limit int

	// Logf, if not nil, receives a trace of every evaluation step.
	Logf func(mess string, args ...interface{})
}

// EvalLinear evaluates a postfix (reversed == false) or prefix
// (reversed == true) expression with a default Evaluator.
func EvalLinear(expr string, reversed bool, ans *int32) (int32, error) {
	return Evaluator{}.Linear(expr, reversed, ans)
}

// EvalInfix evaluates an infix expression with a default Evaluator.
func EvalInfix(expr string, ans *int32) (int32, error) {
	return Evaluator{}.Infix(expr, ans)
}

// Linear evaluates a postfix expression, scanning left to right, or a
// prefix expression when reversed, scanning right to left. ans supplies the
// value of the "ans" token; it is nil when there is no previous answer.
//
// Any returned error is an *Error locating the failure within expr.
func (ev Evaluator) Linear(expr string, reversed bool, ans *int32) (int32, error) {
	m := ev.machine()
	sc := newScanner(expr, reversed, ans)
	for {
		tok, err := sc.next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			ev.logf("lex error: %v", err)
			return 0, err
		}
		if err := m.step(tok, reversed); err != nil {
			return 0, err
		}
	}
	return m.result(sc.cur)
}

func (ev Evaluator) logf(mess string, args ...interface{}) {
	if ev.Logf != nil {
		ev.Logf(mess, args...)
	}
}

func (ev Evaluator) machine() *machine {
	return &machine{Evaluator: ev, stack: newSeq[int32](ev.Limit)}
}

// machine is the reduction core shared by every notation: values are
// pushed, operators pop two values and push their result.
type machine struct {
	Evaluator
	stack seq[int32]
}

// step applies one token. When swap is set the first value popped is the
// left operand rather than the right one, as needed when tokens arrive in
// reverse order.
func (m *machine) step(tok token, swap bool) error {
	if tok.op == opValue {
		if err := m.stack.push(tok.value); err != nil {
			m.logf("push %v: %v", tok, err)
			return errorAt(AllocationFailure, tok.pos)
		}
		m.logf("push %v s:%v", tok, m.stack.items)
		return nil
	}

	if m.stack.len() < 2 {
		m.logf("%v needs 2 values s:%v", tok, m.stack.items)
		return &Error{Kind: InvalidExpression, Pos: tok.pos, cause: NotEnoughValues}
	}
	b := m.stack.pop()
	a := m.stack.pop()
	if swap {
		a, b = b, a
	}

	r, ok := apply(tok.op, a, b)
	if !ok {
		m.logf("%v %v %v out of bounds", a, tok.op, b)
		return errorAt(OutOfBounds, tok.pos)
	}
	m.logf("%v %v %v -> %v", a, tok, b, r)
	if err := m.stack.push(r); err != nil {
		return errorAt(AllocationFailure, tok.pos)
	}
	return nil
}

// reduce applies every token from a postfix-ordered queue.
func (m *machine) reduce(queue *seq[token]) error {
	for i := 0; i < queue.len(); i++ {
		if err := m.step(queue.get(i), false); err != nil {
			return err
		}
	}
	return nil
}

// result succeeds only when exactly one value remains; pos locates the
// failure otherwise.
func (m *machine) result(pos int) (int32, error) {
	if n := m.stack.len(); n != 1 {
		m.logf("%v values remain s:%v", n, m.stack.items)
		return 0, errorAt(InvalidExpression, pos)
	}
	return m.stack.get(0), nil
}
