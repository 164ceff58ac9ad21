/* Package pcalc evaluates integer arithmetic expressions written in prefix,
postfix or infix notation.

Expressions are sequences of whitespace separated tokens: decimal integer
literals with an optional sign, the operators + - * /, and the word "ans"
standing for a caller supplied previous answer. Every token must be followed
by whitespace or by the end of the text, so "12abc" is rejected rather than
read as 12.

Postfix and prefix expressions are reduced directly on a value stack, the
latter by scanning from the right and swapping operand roles. Infix
expressions are first reordered into postfix with the shunting-yard
algorithm; there are no parentheses, * and / bind tighter than + and -, and
ties associate to the left.

Values are 32-bit. Every operation is checked before it is performed, so an
overflow, division by zero or MinValue / -1 fails with OutOfBounds instead of
wrapping. Failures are reported as an *Error whose Pos is the byte offset of
the offending token in the evaluated text, suitable for pointing a caret at
it.
*/
package pcalc
