// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import "github.com/pkg/errors"

// ErrOverflow is returned when a handle field (variable label, sub-table
// index, vtree position) would exceed the bit width reserved for it in a
// packed handle. It is a fatal construction error, never a capacity signal:
// unique tables and apply caches grow or overwrite instead of failing.
var ErrOverflow = errors.New("rsdd: handle field overflows its packed width")

// ErrVTreeMismatch is returned when an operation expecting a BDD leaf
// position is given an SDD-internal vtree position, or vice versa. It
// signals a programming error in the caller, not a recoverable condition.
var ErrVTreeMismatch = errors.New("rsdd: vtree position does not match the requested storage mode")

// ErrUnknownVariable is returned when looking up a variable label that is
// not part of the current variable order.
var ErrUnknownVariable = errors.New("rsdd: variable not in the current order")

// wrapf attaches a formatted message to one of the sentinel errors above
// without losing the ability to recover it with errors.Is.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
