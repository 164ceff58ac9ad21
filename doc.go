/* Command pcalc is an integer calculator for prefix, postfix and infix
expressions.

	pcalc [<option>...]
	pcalc [<option>...] <expression>

Given an expression as arguments, pcalc prints its value and exits non-zero
on error. Otherwise it reads one expression per line, from standard input or
from the files named with -f, printing each result. On a terminal it shows a
prompt naming the notation in use, e.g. "pcalc[i]> ", and stops on "q",
"quit" or end of input.

	-i  infix notation (default)
	-r  postfix notation (rpn)
	-p  prefix notation
	-d  decimal output (default)
	-x  hexadecimal output
	-c  print config path and exit
	-w  print settings and exit
	-f  read expressions from a file, may be repeated; not allowed
	    together with an expression argument

Within a session the word "ans" stands for the last successful result:

	pcalc[i]> 2 + 3 * 4
	14
	pcalc[i]> ans / 2
	7

Errors point at the offending token:

	pcalc[r]> 2147483647 1 +
	Error: Value out of bounds
		2147483647 1 +
		             ^

Preferences are read from $HOME/.pcalc, one directive per line, and may be
overridden by the flags above:

	# comments and blank lines are ignored
	notation postfix
	output hex

See package internal/pcalc for the expression language.
*/
package main
