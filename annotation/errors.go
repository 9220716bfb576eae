// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package annotation

import "fmt"

// ErrorCode classifies per-record decoding failures.
type ErrorCode int

const (
	// MalformedRecord means the block arrays or the name are inconsistent.
	MalformedRecord ErrorCode = iota + 1
	// EmptyAlignedSet means the record has no aligned block, so its group has
	// no aligned span to sort by.
	EmptyAlignedSet
	// NegativeCoordinate means a derived segment would start before position
	// zero.
	NegativeCoordinate
)

func (c ErrorCode) String() string {
	switch c {
	case MalformedRecord:
		return "malformed record"
	case EmptyAlignedSet:
		return "empty aligned set"
	case NegativeCoordinate:
		return "negative coordinate"
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error is a data error tied to one record.  A caller processing many records
// can skip the record and carry on.
type Error struct {
	Code     ErrorCode
	RecordID string
	Msg      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("record %s: %v: %s", e.RecordID, e.Code, e.Msg)
}

func newError(code ErrorCode, id string, format string, args ...interface{}) *Error {
	return &Error{Code: code, RecordID: id, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf returns the ErrorCode of err, if err is an *Error.
func CodeOf(err error) (ErrorCode, bool) {
	if e, ok := err.(*Error); ok {
		return e.Code, true
	}
	return 0, false
}
