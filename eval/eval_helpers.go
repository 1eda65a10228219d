/*
File    : golox/eval/eval_helpers.go
*/
package eval

import (
	"github.com/qig123/golox/objects"
)

// IsError checks whether an evaluation result is a runtime error. Nil
// results (from statement handlers that return nothing useful) are not
// errors.
func IsError(obj objects.LoxObject) bool {
	if obj == nil {
		return false
	}
	return obj.GetType() == objects.ErrorType
}

// UnwrapReturnValue extracts the payload from a ReturnValue wrapper.
// Call activation uses this at the boundary where the unwind stops; a
// value that is not a wrapper passes through unchanged.
func UnwrapReturnValue(obj objects.LoxObject) objects.LoxObject {
	if rv, ok := obj.(*objects.ReturnValue); ok {
		return rv.Value
	}
	return obj
}
