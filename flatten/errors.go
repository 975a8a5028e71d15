// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flatten

import "fmt"

// UnknownReferenceError reports an answer entry referencing a row, choice, or
// other id that is not in the catalog. The whole response is rejected.
type UnknownReferenceError struct {
	QuestionID string
	RefID      string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("question %s: answer references unknown id %q", e.QuestionID, e.RefID)
}

// UnsupportedAnswerShapeError reports an answer entry whose shape the active
// family transformer does not recognize.
type UnsupportedAnswerShapeError struct {
	QuestionID string
	Reason     string
}

func (e *UnsupportedAnswerShapeError) Error() string {
	return fmt.Sprintf("question %s: unsupported answer shape: %s", e.QuestionID, e.Reason)
}
