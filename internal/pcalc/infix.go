package pcalc

import (
	"errors"
	"io"
)

// Infix evaluates an infix expression where * and / bind tighter than + and
// -, and operators of equal precedence associate to the left. The
// expression is converted to postfix order with the shunting-yard algorithm
// and then reduced like Linear.
//
// Any returned error is an *Error locating the failure within expr.
func (ev Evaluator) Infix(expr string, ans *int32) (int32, error) {
	conv := converter{
		Evaluator: ev,
		ops:       newSeq[token](ev.Limit),
		out:       newSeq[token](ev.Limit),
	}

	sc := newScanner(expr, false, ans)
	for {
		tok, err := sc.next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			ev.logf("lex error: %v", err)
			return 0, err
		}
		if err := conv.feed(tok); err != nil {
			return 0, err
		}
	}
	if err := conv.flush(); err != nil {
		return 0, err
	}
	ev.logf("postfix %v", conv.out.items)

	m := ev.machine()
	if err := m.reduce(&conv.out); err != nil {
		return 0, err
	}
	return m.result(sc.cur)
}

// converter is the shunting-yard state: an operator stack and an output
// queue in postfix order.
type converter struct {
	Evaluator
	ops seq[token]
	out seq[token]
}

func (conv *converter) feed(tok token) error {
	if tok.op == opValue {
		return conv.emit(tok)
	}
	for conv.ops.len() > 0 && conv.ops.top().op.precedence() >= tok.op.precedence() {
		if err := conv.emit(conv.ops.pop()); err != nil {
			return err
		}
	}
	if err := conv.ops.push(tok); err != nil {
		return errorAt(AllocationFailure, tok.pos)
	}
	return nil
}

func (conv *converter) emit(tok token) error {
	if err := conv.out.push(tok); err != nil {
		conv.logf("emit %v: %v", tok, err)
		return errorAt(AllocationFailure, tok.pos)
	}
	return nil
}

// flush moves any remaining operators to the output, top first.
func (conv *converter) flush() error {
	for i := conv.ops.len() - 1; i >= 0; i-- {
		if err := conv.emit(conv.ops.get(i)); err != nil {
			return err
		}
	}
	conv.ops.truncate(0)
	return nil
}
