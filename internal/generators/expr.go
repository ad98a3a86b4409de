package generators

import (
	"fmt"
	"regexp"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mmrzaf/mockgen/internal/randutil"
)

// Program is a compiled expression. A vm.Program is read-only after compile
// and can run concurrently.
type Program struct {
	Source  string
	program *vm.Program
}

var exprRule = regexp.MustCompile(`^expr\|.+$`)

// ExprGenerator evaluates an expr-lang expression with random helpers in scope:
// randInt(min, max), randDouble(min, max), randStr(min, max), pick(a, ...),
// uuid() and now().
type ExprGenerator struct{}

func (g *ExprGenerator) Name() string { return "expr" }

func (g *ExprGenerator) ParamSize() int { return 1 }

func (g *ExprGenerator) Match(rule string) bool { return exprRule.MatchString(rule) }

// SplitParams keeps the expression verbatim; '|' is an operator in expr.
func (g *ExprGenerator) SplitParams(segment string) []string { return verbatim(segment) }

func (g *ExprGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	program, err := expr.Compile(params[0], expr.Env(exprEnv(nil)))
	if err != nil {
		return nil, paramError(g.Name(), params, "compile: %v", err)
	}
	return Program{Source: params[0], program: program}, nil
}

func (g *ExprGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	p, ok := params.(Program)
	if !ok || p.program == nil {
		return nil, notInitialized(g.Name(), params)
	}
	out, err := expr.Run(p.program, exprEnv(rng))
	if err != nil {
		return nil, generationError(g.Name(), "eval "+p.Source, err)
	}
	return out, nil
}

func (g *ExprGenerator) Examples() []string {
	return []string{`expr|randInt(1, 10) * 100`, `expr|"user-" + randStr(4, 5)`}
}

// exprEnv binds the helper functions to rng. A nil rng is only used for
// type checking at compile time.
func exprEnv(rng *randutil.Rand) map[string]interface{} {
	return map[string]interface{}{
		"randInt": func(min, max int) (int, error) {
			return rng.RandomInt(min, max)
		},
		"randDouble": func(min, max float64) (float64, error) {
			return rng.RandomFloat(min, max)
		},
		"randStr": func(min, max int) (string, error) {
			if max > MaxLength+1 {
				return "", fmt.Errorf("max (%d) exceeds length limit %d", max, MaxLength)
			}
			n, err := rng.RandomInt(min, max)
			if err != nil {
				return "", err
			}
			return rng.RandomString(n, randutil.Letters)
		},
		"pick": func(values ...interface{}) (interface{}, error) {
			if len(values) == 0 {
				return nil, fmt.Errorf("pick needs at least one value")
			}
			return values[rng.IntN(len(values))], nil
		},
		"uuid": func() (string, error) {
			u, err := randomV4(rng)
			if err != nil {
				return "", err
			}
			return u.String(), nil
		},
		"now": func() string {
			return time.Now().Format(time.RFC3339)
		},
	}
}
