// Package dimacs validates strict DIMACS CNF input and measures clause widths.
//
// Accepted input is a "p cnf V C" header followed by exactly C clause lines.
// Each clause line is a whitespace-separated list of integers in [-V, V]
// ending with a 0. Comment lines and alternative headers are rejected.
//
// # Pipeline
//
//   - LineReader: one line at a time, 16 MiB ceiling per line
//   - ParseHeader: fail-fast checks of the problem line
//   - ValidateClause: per-line token, bounds and terminator checks
//   - Analyze: counts lines against the header and feeds a histogram
//
// Every failure is a *Error carrying a stable ErrorCode. The first failure
// ends the run.
package dimacs
