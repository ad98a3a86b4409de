package generators

import (
	"regexp"
	"strconv"

	"github.com/mmrzaf/mockgen/internal/randutil"
)

// Probability is the chance of producing true.
type Probability float64

var boolRule = regexp.MustCompile(`^bool\|\d+(\.\d+)?$`)

type BoolGenerator struct{}

func (g *BoolGenerator) Name() string { return "bool" }

func (g *BoolGenerator) ParamSize() int { return 1 }

func (g *BoolGenerator) Match(rule string) bool { return boolRule.MatchString(rule) }

func (g *BoolGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	p, err := strconv.ParseFloat(params[0], 64)
	if err != nil {
		return nil, paramError(g.Name(), params, "probability %q is not a number", params[0])
	}
	if p < 0 || p > 1 {
		return nil, paramError(g.Name(), params, "probability must be in [0, 1], got %g", p)
	}
	return Probability(p), nil
}

func (g *BoolGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	p, ok := params.(Probability)
	if !ok {
		return nil, notInitialized(g.Name(), params)
	}
	return rng.Float64() < float64(p), nil
}

func (g *BoolGenerator) Examples() []string {
	return []string{"bool|0.5", "bool|1"}
}
