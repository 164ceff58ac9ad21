package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jcorbin/pcalc/internal/pcalc"
)

// formatNumber renders n in the given base; hexadecimal is upper case with
// any sign ahead of the 0x prefix.
func formatNumber(base Base, n int32) string {
	switch base {
	case Hex:
		v := int64(n)
		sign := ""
		if v < 0 {
			sign, v = "-", -v
		}
		return sign + "0x" + strings.ToUpper(strconv.FormatInt(v, 16))
	default:
		return strconv.FormatInt(int64(n), 10)
	}
}

// formatError renders err as a diagnostic. Evaluation errors also show the
// expression with a caret under the offending token:
//
//	Error: Unknown token
//		1 + x
//		    ^
func formatError(where, expr string, err error) string {
	var sb strings.Builder
	if where != "" {
		sb.WriteString(where)
		sb.WriteString(": ")
	}

	var pe *pcalc.Error
	if !errors.As(err, &pe) {
		fmt.Fprintf(&sb, "Error: %v\n", err)
		return sb.String()
	}

	fmt.Fprintf(&sb, "Error: %v\n", pe.Kind)
	if pos := pe.Pos; pos >= 0 && pos <= len(expr) {
		sb.WriteByte('\t')
		sb.WriteString(expr)
		sb.WriteString("\n\t")
		sb.WriteString(caretPad(expr[:pos]))
		sb.WriteString("^\n")
	}
	return sb.String()
}

// caretPad returns blank space as wide as prefix, keeping any tabs so that
// a caret written after it lines up with the following character.
func caretPad(prefix string) string {
	var sb strings.Builder
	sb.Grow(len(prefix))
	for len(prefix) > 0 {
		r, n := utf8.DecodeRuneInString(prefix)
		prefix = prefix[n:]
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func writeError(w io.Writer, where, expr string, err error) error {
	_, werr := io.WriteString(w, formatError(where, expr, err))
	return werr
}
