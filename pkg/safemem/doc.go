// Package safemem is a conversion of safeclib's bounds-checking memory
// interfaces (ISO/IEC TR 24731 part I extensions) for Go slices.
//
// Every function validates its arguments before touching memory. A failed
// check invokes the process-wide constraint handler (see
// [github.com/daanv2/go-safemem/pkg/constraint]) and returns the matching
// status code; the operation itself is never partially performed. Callers
// own all memory involved; nothing is allocated or retained across calls.
package safemem
