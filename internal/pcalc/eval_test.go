package pcalc

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notation int

const (
	postfix notation = iota
	prefix
	infix
)

func (n notation) String() string {
	return [...]string{"postfix", "prefix", "infix"}[n]
}

func (n notation) eval(ev Evaluator, expr string, ans *int32) (int32, error) {
	switch n {
	case postfix:
		return ev.Linear(expr, false, ans)
	case prefix:
		return ev.Linear(expr, true, ans)
	default:
		return ev.Infix(expr, ans)
	}
}

type evalTestCase struct {
	notation
	expr    string
	ans     *int32
	limit   int
	want    int32
	wantErr Kind
	wantPos int
}

func (tc evalTestCase) run(t *testing.T) {
	ev := Evaluator{Limit: tc.limit, Logf: t.Logf}
	got, err := tc.eval(ev, tc.expr, tc.ans)
	if tc.wantErr != 0 {
		require.Error(t, err, "expected %v", tc.wantErr)
		assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		assert.Equal(t, tc.wantPos, Pos(err), "expected error position in %q", tc.expr)
		return
	}
	require.NoError(t, err)
	assert.Equal(t, tc.want, got)
}

func ok(n notation, expr string, want int32) evalTestCase {
	return evalTestCase{notation: n, expr: expr, want: want}
}

func fail(n notation, expr string, kind Kind, pos int) evalTestCase {
	return evalTestCase{notation: n, expr: expr, wantErr: kind, wantPos: pos}
}

func (tc evalTestCase) withAns(ans int32) evalTestCase {
	tc.ans = &ans
	return tc
}

func (tc evalTestCase) withLimit(limit int) evalTestCase {
	tc.limit = limit
	return tc
}

func Test_Evaluator(t *testing.T) {
	for _, tc := range []evalTestCase{
		// postfix
		ok(postfix, "1 2 +", 3),
		ok(postfix, "2 1 +", 3),
		ok(postfix, "5 3 -", 2),
		ok(postfix, "7 2 /", 3),
		ok(postfix, "-7 2 /", -3),
		ok(postfix, "6 7 *", 42),
		ok(postfix, "  1 2 3 * +  ", 7),
		ok(postfix, "1 2 + 3 *", 9),
		ok(postfix, "42", 42),
		ok(postfix, "-5 -3 -", -2),
		ok(postfix, "2147483647 1 -", 2147483646),
		ok(postfix, "-2147483648 1 +", -2147483647),
		ok(postfix, "ans ans *", 49).withAns(7),
		fail(postfix, "2147483647 1 +", OutOfBounds, 13),
		fail(postfix, "-2147483648 -1 /", OutOfBounds, 15),
		fail(postfix, "1 0 /", OutOfBounds, 4),
		fail(postfix, "65536 65536 *", OutOfBounds, 12),
		fail(postfix, "3 +", InvalidExpression, 2),
		fail(postfix, "+ 3", InvalidExpression, 0),
		fail(postfix, "3 4", InvalidExpression, 3),
		fail(postfix, "", InvalidExpression, 0),
		fail(postfix, "   ", InvalidExpression, 3),
		fail(postfix, "1 2 + x", UnknownToken, 6),
		fail(postfix, "12abc 1 +", UnknownToken, 0),
		fail(postfix, "1 99999999999 +", OutOfBounds, 2),
		fail(postfix, "ans 1 +", NoPreviousAnswer, 0),
		fail(postfix, "1 2 3 +", InvalidExpression, 7),

		// prefix
		ok(prefix, "+ 1 2", 3),
		ok(prefix, "- 5 3", 2),
		ok(prefix, "/ 7 2", 3),
		ok(prefix, "* + 1 2 3", 9),
		ok(prefix, "+ 1 * 2 3", 7),
		ok(prefix, "- - 10 3 2", 5),
		ok(prefix, "  42  ", 42),
		ok(prefix, "- ans 1", 6).withAns(7),
		fail(prefix, "+ 2147483647 1", OutOfBounds, 0),
		fail(prefix, "/ 1 0", OutOfBounds, 0),
		fail(prefix, "/ -2147483648 -1", OutOfBounds, 0),
		fail(prefix, "+ 3", InvalidExpression, 0),
		fail(prefix, "3 +", InvalidExpression, 2),
		fail(prefix, "3 4", InvalidExpression, 0),
		fail(prefix, "  3 4", InvalidExpression, 2),
		fail(prefix, "", InvalidExpression, 0),
		fail(prefix, "+ 1 x", UnknownToken, 4),
		fail(prefix, "+ ans 1", NoPreviousAnswer, 2),

		// infix
		ok(infix, "1 + 2", 3),
		ok(infix, "2 + 3 * 4", 14),
		ok(infix, "2 * 3 + 4", 10),
		ok(infix, "10 - 4 - 3", 3),
		ok(infix, "100 / 10 / 5", 2),
		ok(infix, "8 / 2 * 4", 16),
		ok(infix, "1 - 2 * 3 + 4 / 2", -3),
		ok(infix, "-3 * -3", 9),
		ok(infix, "7", 7),
		ok(infix, "ans + 1", 8).withAns(7),
		ok(infix, "2147483647 - 1", 2147483646),
		fail(infix, "ans + 1", NoPreviousAnswer, 0),
		fail(infix, "2147483647 + 1", OutOfBounds, 11),
		fail(infix, "1 + 2147483647 * 2", OutOfBounds, 15),
		fail(infix, "5 / 0", OutOfBounds, 2),
		fail(infix, "3 +", InvalidExpression, 2),
		fail(infix, "+ 3", InvalidExpression, 0),
		fail(infix, "3 4", InvalidExpression, 3),
		fail(infix, "", InvalidExpression, 0),
		fail(infix, "1 + 2 $", UnknownToken, 6),
		fail(infix, "1 + 2+", UnknownToken, 4),

		// limits
		ok(postfix, "1 2 + 3 +", 6).withLimit(2),
		fail(postfix, "1 2 3 + +", AllocationFailure, 4).withLimit(2),
		fail(infix, "1 + 2", AllocationFailure, 2).withLimit(2),
		ok(infix, "1 * 2", 2).withLimit(3),
	} {
		t.Run(fmt.Sprintf("%v %q", tc.notation, tc.expr), tc.run)
	}
}

func Test_Evaluator_notationsAgree(t *testing.T) {
	for _, exprs := range [][3]string{
		// postfix, prefix, infix
		{"1 2 +", "+ 1 2", "1 + 2"},
		{"2 3 4 * +", "+ 2 * 3 4", "2 + 3 * 4"},
		{"10 4 - 3 -", "- - 10 4 3", "10 - 4 - 3"},
		{"20 5 / 2 *", "* / 20 5 2", "20 / 5 * 2"},
		{"1 2 3 * + 8 4 / -", "- + 1 * 2 3 / 8 4", "1 + 2 * 3 - 8 / 4"},
	} {
		t.Run(exprs[2], func(t *testing.T) {
			var results [3]int32
			for i, n := range []notation{postfix, prefix, infix} {
				r, err := n.eval(Evaluator{}, exprs[i], nil)
				require.NoError(t, err, "%v %q", n, exprs[i])
				results[i] = r
			}
			assert.Equal(t, results[0], results[1], "prefix disagrees with postfix")
			assert.Equal(t, results[0], results[2], "infix disagrees with postfix")
		})
	}
}

func Test_Evaluator_errorsRepeat(t *testing.T) {
	for _, n := range []notation{postfix, prefix, infix} {
		for _, expr := range []string{"3 +", "1 2 + x", "2147483647 1 +", "1 0 /", "ans"} {
			_, err1 := n.eval(Evaluator{}, expr, nil)
			_, err2 := n.eval(Evaluator{}, expr, nil)
			require.Error(t, err1, "%v %q", n, expr)
			assert.Equal(t, err1, err2, "%v %q", n, expr)
		}
	}
}

func Test_Evaluator_ansUntouched(t *testing.T) {
	ans := int32(5)
	r, err := EvalInfix("ans * ans + ans", &ans)
	require.NoError(t, err)
	assert.Equal(t, int32(30), r)
	assert.Equal(t, int32(5), ans)

	r, err = EvalLinear("ans 2 *", false, &ans)
	require.NoError(t, err)
	assert.Equal(t, int32(10), r)
	assert.Equal(t, int32(5), ans)
}

func Test_Evaluator_trace(t *testing.T) {
	var lines []string
	ev := Evaluator{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}
	_, err := ev.Infix("1 + 2 * 3", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"postfix [1@0 2@4 3@8 *@6 +@2]",
		"push 1@0 s:[1]",
		"push 2@4 s:[1 2]",
		"push 3@8 s:[1 2 3]",
		"2 *@6 3 -> 6",
		"1 +@2 6 -> 7",
	}, lines)
}

func Test_Error(t *testing.T) {
	_, err := EvalLinear("+", false, nil)
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid expression at offset 0")
	assert.True(t, errors.Is(err, InvalidExpression))
	assert.True(t, errors.Is(err, NotEnoughValues), "expected escalated cause")
	assert.False(t, errors.Is(err, OutOfBounds))

	var pe *Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, InvalidExpression, pe.Kind)
	assert.Equal(t, InvalidExpression, errors.Unwrap(err))

	assert.Equal(t, -1, Pos(errors.New("other")))
	assert.Equal(t, 3, Pos(fmt.Errorf("wrapped: %w", errorAt(UnknownToken, 3))))
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.True(t, strings.HasPrefix(OutOfBounds.Error(), "Value out of bounds"))
}
