package generators

import (
	"regexp"

	"github.com/mmrzaf/mockgen/internal/randutil"
)

// IntRange bounds a generated integer to [Min, Max).
type IntRange struct {
	Min int64
	Max int64
}

var intRule = regexp.MustCompile(`^int\|\d+-\d+$`)

type UniformIntGenerator struct{}

func (g *UniformIntGenerator) Name() string { return "int" }

func (g *UniformIntGenerator) ParamSize() int { return 1 }

func (g *UniformIntGenerator) Match(rule string) bool { return intRule.MatchString(rule) }

func (g *UniformIntGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	min, max, err := parseIntRange(g.Name(), params, params[0])
	if err != nil {
		return nil, err
	}
	return IntRange{Min: min, Max: max}, nil
}

func (g *UniformIntGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	p, ok := params.(IntRange)
	if !ok {
		return nil, notInitialized(g.Name(), params)
	}
	v, err := rng.RandomInt64(p.Min, p.Max)
	if err != nil {
		return nil, generationError(g.Name(), "range", err)
	}
	return v, nil
}

func (g *UniformIntGenerator) Examples() []string {
	return []string{"int|1-100", "int|0-1"}
}
