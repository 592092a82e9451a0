// Package shell holds the state behind a converter front end: the input text,
// the conversion mode, the derived output and a transient "copied" flag.
//
// Every mutation recomputes the output. Blank input yields empty output
// without calling the conversion service, and a failed conversion replaces
// the output with domain.InvalidFormatMessage. Errors never leave the
// session; they are logged.
//
// The terminal REPL (binconv shell) and the HTTP daemon (binconvd) both drive
// a Session.
package shell
