package generators

import (
	"regexp"

	"github.com/lucasjones/reggen"

	"github.com/mmrzaf/mockgen/internal/randutil"
)

// RepeatLimit caps unbounded repetitions (*, +) in regex rules.
const RepeatLimit = 10

// Pattern is a regular expression that has been checked to compile.
type Pattern string

var regexRule = regexp.MustCompile(`^regex\|.+$`)

// RegexGenerator produces strings that match the rule's pattern.
type RegexGenerator struct{}

func (g *RegexGenerator) Name() string { return "regex" }

func (g *RegexGenerator) ParamSize() int { return 1 }

func (g *RegexGenerator) Match(rule string) bool { return regexRule.MatchString(rule) }

// SplitParams keeps the pattern verbatim; alternations use '|'.
func (g *RegexGenerator) SplitParams(segment string) []string { return verbatim(segment) }

func (g *RegexGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	if _, err := reggen.NewGenerator(params[0]); err != nil {
		return nil, paramError(g.Name(), params, "bad pattern: %v", err)
	}
	return Pattern(params[0]), nil
}

// Generate builds a fresh reggen generator per call; reggen keeps its own
// math/rand source, which is not safe to share between goroutines.
func (g *RegexGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	p, ok := params.(Pattern)
	if !ok {
		return nil, notInitialized(g.Name(), params)
	}
	gen, err := reggen.NewGenerator(string(p))
	if err != nil {
		return nil, generationError(g.Name(), "pattern", err)
	}
	gen.SetSeed(rng.Int64())
	return gen.Generate(RepeatLimit), nil
}

func (g *RegexGenerator) Examples() []string {
	return []string{`regex|[a-z]{3}-\d{4}`, "regex|(GET|POST) /api"}
}
