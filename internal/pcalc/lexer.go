package pcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// MaxTokenLen bounds the length of a numeric literal, sign included.
const MaxTokenLen = 32

// ansWord is the reserved token standing for the previous answer.
const ansWord = "ans"

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// delimited reports whether a token ending at i is followed by whitespace
// or end of text.
func delimited(src string, i int) bool {
	return i >= len(src) || isSpace(src[i])
}

func skipSpace(src string, i int) int {
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	return i
}

// tokenBefore returns the start of the last token ending at or before end,
// or -1 if only whitespace precedes end.
func tokenBefore(src string, end int) int {
	for end > 0 && isSpace(src[end-1]) {
		end--
	}
	if end == 0 {
		return -1
	}
	start := end - 1
	for start > 0 && !isSpace(src[start-1]) {
		start--
	}
	return start
}

// lex reads the token starting at pos, which must not be whitespace.
// The returned token's end is the offset immediately past it.
func lex(src string, pos int, ans *int32) (token, error) {
	tok := token{pos: pos, end: pos + 1}
	if pos >= len(src) {
		return tok, errorAt(UnknownToken, pos)
	}

	c := src[pos]
	switch {
	case c == '+' && delimited(src, pos+1):
		tok.op = opAdd
		return tok, nil
	case c == '-' && delimited(src, pos+1):
		tok.op = opSub
		return tok, nil
	case c == '*' && delimited(src, pos+1):
		tok.op = opMul
		return tok, nil
	case c == '/' && delimited(src, pos+1):
		tok.op = opDiv
		return tok, nil

	case strings.HasPrefix(src[pos:], ansWord) && delimited(src, pos+len(ansWord)):
		if ans == nil {
			return tok, errorAt(NoPreviousAnswer, pos)
		}
		tok.value = *ans
		tok.end = pos + len(ansWord)
		return tok, nil

	case isDigit(c) || c == '+' || c == '-':
		return lexNumber(src, pos)
	}
	return tok, errorAt(UnknownToken, pos)
}

func lexNumber(src string, pos int) (token, error) {
	tok := token{pos: pos}

	i := pos
	if c := src[i]; c == '+' || c == '-' {
		i++
	}
	digits := i
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i == digits || !delimited(src, i) {
		return tok, errorAt(UnknownToken, pos)
	}
	if i-pos > MaxTokenLen {
		return tok, errorAt(OutOfBounds, pos)
	}

	n, err := strconv.ParseInt(src[pos:i], 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return tok, errorAt(OutOfBounds, pos)
	} else if err != nil {
		return tok, errorAt(UnknownToken, pos)
	}
	tok.value = int32(n)
	tok.end = i
	return tok, nil
}

// scanner produces tokens one at a time, left to right or, when reversed,
// right to left. cur always rests on a token start or on end of text.
type scanner struct {
	src      string
	ans      *int32
	reversed bool
	cur      int
}

func newScanner(src string, reversed bool, ans *int32) *scanner {
	sc := &scanner{src: src, ans: ans, reversed: reversed}
	if reversed {
		sc.cur = len(src)
	}
	return sc
}

// next returns the next token, or io.EOF once the text is exhausted. After
// an error cur is the offending token's start.
func (sc *scanner) next() (token, error) {
	if sc.reversed {
		start := tokenBefore(sc.src, sc.cur)
		if start < 0 {
			sc.cur = skipSpace(sc.src, 0)
			return token{}, io.EOF
		}
		sc.cur = start
		return lex(sc.src, start, sc.ans)
	}

	sc.cur = skipSpace(sc.src, sc.cur)
	if sc.cur >= len(sc.src) {
		return token{}, io.EOF
	}
	tok, err := lex(sc.src, sc.cur, sc.ans)
	if err == nil {
		sc.cur = tok.end
	}
	return tok, err
}
