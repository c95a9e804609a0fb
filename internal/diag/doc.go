// Package diag implements the diagnostic subsystem of the hel front-end.
//
// Diagnostics flow from the lexer and the parser into a shared Bag through
// the Reporter contract. The subsystem is infallible: reporting never fails
// and never interrupts the phase that reports. Order inside a Bag is
// insertion order, which matches source-byte order for lexical errors and
// pre-order over the attempted CST for parse errors; Sort() produces the
// stable presentation order used by the formatters.
package diag
