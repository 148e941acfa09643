package constraint

import (
	"log"
	"runtime/debug"
	"sync/atomic"
)

// Handler reacts to a runtime-constraint violation. msg describes the
// violation, ptr is an optional caller context (the safe memory functions
// always pass nil), and err is the classification the failing call returns.
// A handler may return, letting the failing call complete with its status
// code, or it may panic or terminate the process.
type Handler func(msg string, ptr any, err error)

var installed atomic.Pointer[Handler]

// SetHandler installs h as the process-wide constraint handler and returns
// the handler that was installed before it. A nil h restores [Default].
func SetHandler(h Handler) Handler {
	var p *Handler
	if h != nil {
		p = &h
	}

	prev := installed.Swap(p)
	if prev == nil {
		return Default
	}
	return *prev
}

// Handle invokes the currently installed handler, synchronously.
func Handle(msg string, ptr any, err error) {
	if p := installed.Load(); p != nil {
		(*p)(msg, ptr, err)
		return
	}
	Default(msg, ptr, err)
}

// Default logs the violation to stderr and returns, leaving the failing call
// to report its status code.
func Default(msg string, ptr any, err error) {
	log.Printf("safemem: %s: %v", msg, err)
}

// Abort panics with the violation message and the stack of the offending
// call.
func Abort(msg string, ptr any, err error) {
	s := debug.Stack()

	panic("constraint violation: " + msg + " (" + err.Error() + ")\n" + string(s))
}

// Ignore discards the violation.
func Ignore(msg string, ptr any, err error) {}
