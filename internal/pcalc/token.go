package pcalc

import "fmt"

type op uint8

const (
	opValue op = iota
	opAdd
	opSub
	opMul
	opDiv
)

var opNames = [...]string{
	opValue: "value",
	opAdd:   "+",
	opSub:   "-",
	opMul:   "*",
	opDiv:   "/",
}

func (o op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// precedence ranks binary operators; higher binds tighter.
func (o op) precedence() int {
	switch o {
	case opMul, opDiv:
		return 1
	default:
		return 0
	}
}

type opError op

func (o opError) Error() string { return fmt.Sprintf("invalid operator %v", op(o)) }

// token is one lexed unit: a value or a binary operator, along with the
// source span it was read from.
type token struct {
	op    op
	value int32
	pos   int
	end   int
}

func (tok token) String() string {
	if tok.op == opValue {
		return fmt.Sprintf("%d@%d", tok.value, tok.pos)
	}
	return fmt.Sprintf("%v@%d", tok.op, tok.pos)
}
