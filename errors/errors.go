// Package errors implements error values that carry the stack trace of the
// point where they were created, and helpers to walk chains of wrapped
// errors.
//
// NOTE: This package mirrors the standard "errors" module.  Code in this
// repository should use it so that load and bind failures keep their origin.
package errors

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"
)

// StackError exposes the message, the wrapped error and the creation stack.
type StackError interface {
	// Returns the error message without the stack trace.
	GetMessage() string

	// Returns the wrapped error, or nil if nothing is wrapped.
	GetInner() error

	// Implements the built-in error interface.
	Error() string

	// Returns stack addresses as a space separated hex string.  Cheaper than
	// StackFrames since no symbolization is done.
	StackAddrs() string

	// Returns symbolized stack frames.
	StackFrames() []StackFrame

	// Returns a printable form of the stack frames, one function per line
	// followed by an indented file:line.  Do not parse it.
	GetStack() string
}

// A single symbolized stack frame.  Func is nil for inlined frames.
type StackFrame struct {
	PC         uintptr
	Func       *runtime.Func
	FuncName   string
	File       string
	LineNumber int
}

type baseError struct {
	msg   string
	inner error

	stack       []uintptr
	framesOnce  sync.Once
	stackFrames []StackFrame
}

// GetMessage returns the error string without stack trace information.
func GetMessage(err interface{}) string {
	switch e := err.(type) {
	case StackError:
		return fullMessage(e, false)
	case error:
		return e.Error()
	default:
		return "Passed a non-error to GetMessage"
	}
}

func (e *baseError) Error() string {
	return fullMessage(e, true)
}

func (e *baseError) GetMessage() string {
	return e.msg
}

func (e *baseError) GetInner() error {
	return e.inner
}

// Unwrap lets the standard library's errors.Is/As see through the chain.
func (e *baseError) Unwrap() error {
	return e.inner
}

func (e *baseError) StackAddrs() string {
	if len(e.stack) == 0 {
		return ""
	}
	buf := bytes.NewBuffer(make([]byte, 0, len(e.stack)*8))
	for i, pc := range e.stack {
		if i > 0 {
			_ = buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "0x%x", pc)
	}
	return buf.String()
}

// StackFrames symbolizes through runtime.CallersFrames so that inlined
// constructors and callers expand into their logical frames.
func (e *baseError) StackFrames() []StackFrame {
	e.framesOnce.Do(func() {
		e.stackFrames = make([]StackFrame, 0, len(e.stack))
		if len(e.stack) == 0 {
			return
		}
		frames := runtime.CallersFrames(e.stack)
		for {
			frame, more := frames.Next()
			e.stackFrames = append(e.stackFrames, StackFrame{
				PC:         frame.PC,
				Func:       frame.Func,
				FuncName:   frame.Function,
				File:       frame.File,
				LineNumber: frame.Line,
			})
			if !more {
				break
			}
		}
	})
	return e.stackFrames
}

func (e *baseError) GetStack() string {
	buf := bytes.NewBuffer(make([]byte, 0, 256))
	for _, frame := range e.StackFrames() {
		_, _ = buf.WriteString(frame.FuncName)
		_, _ = buf.WriteString("\n")
		fmt.Fprintf(buf, "\t%s:%d +0x%x\n",
			frame.File, frame.LineNumber, frame.PC)
	}
	return buf.String()
}

// New returns an error with the given message and the caller's stack.
func New(msg string) StackError {
	return newError(nil, msg)
}

// Same as New, but with fmt.Printf-style parameters.
func Newf(format string, args ...interface{}) StackError {
	return newError(nil, fmt.Sprintf(format, args...))
}

// Wrap returns an error that adds msg in front of err.
func Wrap(err error, msg string) StackError {
	return newError(err, msg)
}

// Same as Wrap, but with fmt.Printf-style parameters.
func Wrapf(err error, format string, args ...interface{}) StackError {
	return newError(err, fmt.Sprintf(format, args...))
}

// newError must be called directly from an exported constructor; the skip
// count below drops runtime.Callers, newError and the constructor.
func newError(err error, msg string) *baseError {
	stack := make([]uintptr, 200)
	stackLength := runtime.Callers(3, stack)
	return &baseError{
		msg:   msg,
		stack: stack[:stackLength],
		inner: err,
	}
}

// fullMessage joins the messages of e and every error it wraps, one per
// line.  When includeStack is set the stack of the innermost StackError is
// appended.
func fullMessage(e StackError, includeStack bool) string {
	var last StackError
	msg := bytes.NewBuffer(make([]byte, 0, 1024))

	cur := e
	for {
		last = cur
		msg.WriteString(cur.GetMessage())

		inner := cur.GetInner()
		if inner == nil {
			break
		}
		next, ok := inner.(StackError)
		if !ok {
			msg.WriteString(": ")
			msg.WriteString(inner.Error())
			break
		}
		msg.WriteString("\n")
		cur = next
	}
	if includeStack {
		msg.WriteString("\nORIGINAL STACK TRACE:\n")
		msg.WriteString(last.GetStack())
	}
	return msg.String()
}
