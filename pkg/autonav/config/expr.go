package config

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/BrandonKowalski/autonav/pkg/autonav"
)

// MatchExpr compiles a boolean expression into a Matcher. The expression
// sees two variables: kind (the screen's kind as a string) and screen (the
// screen value itself, so exported fields and methods are reachable).
//
//	kind == "settings" || kind in ["main", "home"]
//
// A screen whose evaluation fails does not match.
func MatchExpr(expression string) (autonav.Matcher, error) {
	program, err := expr.Compile(expression,
		expr.Env(map[string]any{"kind": ""}),
		// screen stays untyped so field and method access is checked at run time.
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}

	return func(screen autonav.Screen) bool {
		return evalMatch(program, screen)
	}, nil
}

func matchEnv(screen autonav.Screen) map[string]any {
	env := map[string]any{
		"kind":   "",
		"screen": nil,
	}
	if screen != nil {
		env["kind"] = string(screen.Kind())
		env["screen"] = screen
	}
	return env
}

func evalMatch(program *vm.Program, screen autonav.Screen) bool {
	out, err := expr.Run(program, matchEnv(screen))
	if err != nil {
		return false
	}
	matched, ok := out.(bool)
	return ok && matched
}
