package table

import (
	"errors"
	"fmt"
)

// Sentinel errors for table I/O.
var (
	// ErrBadSaveFormat indicates malformed data while reading a saved table.
	ErrBadSaveFormat = errors.New("table: malformed table save data")
)

// FatalError is the payload carried by panics raised on unrecoverable
// contract violations: capacity overruns, out-of-range rows, operand
// mismatches. These are programming errors, not conditions a caller is
// expected to recover from, so they do not travel through error returns.
type FatalError struct {
	// Component names the structure that detected the violation, e.g. "Table".
	Component string
	// Op is the operation in progress, e.g. "Push".
	Op string
	// Indices holds the offending index arguments, in call order.
	Indices []int
	// Detail optionally describes violations not expressible as indices.
	Detail string
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("table: %s.%s: %s (indices %v)", e.Component, e.Op, e.Detail, e.Indices)
	}
	return fmt.Sprintf("table: %s.%s: fatal condition at indices %v", e.Component, e.Op, e.Indices)
}

// Fatal panics with a *FatalError describing an unrecoverable contract
// violation in the given component and operation. It is exported so that
// higher layers built on these tables raise through the same signal.
func Fatal(component, op string, indices ...int) {
	panic(&FatalError{Component: component, Op: op, Indices: indices})
}

// Fatalf is Fatal with a free-form detail message.
func Fatalf(component, op, detail string, indices ...int) {
	panic(&FatalError{Component: component, Op: op, Indices: indices, Detail: detail})
}
