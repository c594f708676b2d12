/* Package main: memcalc -- a calculator with named memory

memcalc reads one expression per line, and prints its value:

	> 2 + 3 * 4
	 => 14
	> ( 2 + 3 ) * 4
	 => 20

Every word of a line must be separated by whitespace: numbers, the operators
+ - * /, parentheses, and the names of memory slots.

Memory slots are written by memory commands, a single word line like memNAME+
or memNAME-, which adds (or subtracts) the previous result into the slot NAME,
creating it if necessary:

	> 6 * 7
	 => 42
	> memanswer+
	 => 42
	> answer / 2
	 => 21

Once written, a slot may be referenced by name in any later expression. Reading
a slot that was never written is an error; there is no implicit zero. The
previous result only changes after an expression evaluates successfully.

Errors (unknown words, unbalanced parentheses, division by zero, ...) are
reported with their input location, and the session continues with the next
line. An empty line, or the end of input, ends the session.

Usage:

	memcalc [flags] [file ...]

Files are read in order as one session; with no files, standard input is
read. See memcalc -help for flags.
*/
package main
