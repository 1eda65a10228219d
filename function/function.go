/*
File    : golox/function/function.go
*/
package function

import (
	"fmt"

	"github.com/qig123/golox/lexer"
	"github.com/qig123/golox/objects"
	"github.com/qig123/golox/parser"
)

// Function represents a user-defined function value.
//
// Fields:
//   - Name: The declared name, used by the <fn NAME> rendering.
//   - Params: The parameter identifier tokens, bound in order to the
//     call's arguments.
//   - Body: The function body block, evaluated on each call.
//   - Anchor: The id of the scope frame that was current when the
//     function was declared. Name resolution inside a call starts from a
//     fresh child of this frame, not of the caller's frame, which is
//     what makes closures work.
type Function struct {
	Name   string                     // Name of the function
	Params []lexer.Token              // Parameter tokens, in declaration order
	Body   *parser.BlockStatementNode // Function body to execute on call
	Anchor int                        // Closure anchor frame id
}

// GetType returns the type identifier for this Function object.
// This implements the objects.LoxObject interface.
func (f *Function) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString returns the rendering used by the print statement: <fn NAME>.
func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// ToObject returns a detailed representation including the parameter
// names, e.g. "<fn add(a, b) @2>" where @2 is the closure anchor.
func (f *Function) ToObject() string {
	params := ""
	for i, param := range f.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Lexeme
	}
	return fmt.Sprintf("<fn %s(%s) @%d>", f.Name, params, f.Anchor)
}

// Arity returns the number of parameters the function expects.
func (f *Function) Arity() int {
	return len(f.Params)
}
