package generators

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mmrzaf/mockgen/internal/randutil"
)

// FloatRange bounds a generated float to [Min, Max).
type FloatRange struct {
	Min float64
	Max float64
}

var doubleRule = regexp.MustCompile(`^double\|\d+(\.\d+)?-\d+(\.\d+)?$`)

type UniformFloatGenerator struct{}

func (g *UniformFloatGenerator) Name() string { return "double" }

func (g *UniformFloatGenerator) ParamSize() int { return 1 }

func (g *UniformFloatGenerator) Match(rule string) bool { return doubleRule.MatchString(rule) }

func (g *UniformFloatGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	lo, hi, ok := strings.Cut(params[0], "-")
	if !ok {
		return nil, paramError(g.Name(), params, "range %q must be min-max", params[0])
	}
	min, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return nil, paramError(g.Name(), params, "min %q is not a number", lo)
	}
	max, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return nil, paramError(g.Name(), params, "max %q is not a number", hi)
	}
	if min < 0 || !(min < max) {
		return nil, paramError(g.Name(), params, "need 0 <= min < max, got %g-%g", min, max)
	}
	return FloatRange{Min: min, Max: max}, nil
}

func (g *UniformFloatGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	p, ok := params.(FloatRange)
	if !ok {
		return nil, notInitialized(g.Name(), params)
	}
	v, err := rng.RandomFloat(p.Min, p.Max)
	if err != nil {
		return nil, generationError(g.Name(), "range", err)
	}
	return v, nil
}

func (g *UniformFloatGenerator) Examples() []string {
	return []string{"double|1.5-9.75", "double|0-1"}
}
