package grouping

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// ItemVar is the variable an expression uses to refer to the item.
const ItemVar = "item"

// ErrorKey is the key assigned to items for which the expression fails at
// run time. It is deterministic, so the index stays consistent.
const ErrorKey = "\x00error"

// FromExpr compiles expression with github.com/expr-lang/expr and returns a
// Func that runs the program against each item.
//
// The expression sees the item as "item", typed after T, so field access on
// struct items is checked at compile time:
//
//	grouping.FromExpr[Container](`lower(item.Port)`)
//
// Non-string results are rendered with fmt.Sprint. Run-time failures map the
// item to ErrorKey: a slotstore logs a "grouping failed" warning for each
// such item, and the failed items are listed by ViewByGroup(name, ErrorKey).
func FromExpr[T any](expression string) (Func[T], error) {
	if expression == "" {
		return nil, ErrEmptyExpr
	}
	var zero T
	program, err := exprlang.Compile(expression,
		exprlang.Env(map[string]any{ItemVar: zero}),
		exprlang.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("grouping: compile %q: %w", expression, err)
	}

	return exprFunc[T](program), nil
}

func exprFunc[T any](program *exprvm.Program) Func[T] {
	return func(item T) string {
		out, err := exprlang.Run(program, map[string]any{ItemVar: item})
		if err != nil {
			return ErrorKey
		}
		if s, ok := out.(string); ok {
			return s
		}

		return fmt.Sprint(out)
	}
}
