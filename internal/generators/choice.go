package generators

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mmrzaf/mockgen/internal/randutil"
)

// Choices is the candidate set of a list or pick rule. Weights is nil for
// uniform selection.
type Choices struct {
	Values  []string
	Weights []float64
	total   float64
}

var (
	listRule = regexp.MustCompile(`^list\|\[.*\]$`)
	pickRule = regexp.MustCompile(`^pick\|[^|]+:\d+(\.\d+)?(,[^|]+:\d+(\.\d+)?)*$`)
)

// ChoiceGenerator picks one element of a bracketed list uniformly.
type ChoiceGenerator struct{}

func (g *ChoiceGenerator) Name() string { return "list" }

func (g *ChoiceGenerator) ParamSize() int { return 1 }

func (g *ChoiceGenerator) Match(rule string) bool { return listRule.MatchString(rule) }

// SplitParams keeps the bracketed list intact so elements may contain '|'.
func (g *ChoiceGenerator) SplitParams(segment string) []string { return verbatim(segment) }

func (g *ChoiceGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	raw := strings.TrimSpace(params[0])
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return nil, paramError(g.Name(), params, "values must be enclosed in [ ]")
	}
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return nil, paramError(g.Name(), params, "values cannot be empty")
	}
	parts := strings.Split(inner, ",")
	values := make([]string, len(parts))
	for i, part := range parts {
		values[i] = strings.TrimSpace(part)
	}
	return Choices{Values: values}, nil
}

func (g *ChoiceGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	return pickChoice(g.Name(), rng, params)
}

func (g *ChoiceGenerator) Examples() []string {
	return []string{"list|[a,b,c]", "list|[red, green]"}
}

// WeightedChoiceGenerator picks one of value:weight pairs proportionally to weight.
type WeightedChoiceGenerator struct{}

func (g *WeightedChoiceGenerator) Name() string { return "pick" }

func (g *WeightedChoiceGenerator) ParamSize() int { return 1 }

func (g *WeightedChoiceGenerator) Match(rule string) bool { return pickRule.MatchString(rule) }

func (g *WeightedChoiceGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	parts := strings.Split(params[0], ",")
	c := Choices{
		Values:  make([]string, 0, len(parts)),
		Weights: make([]float64, 0, len(parts)),
	}
	for _, part := range parts {
		idx := strings.LastIndex(part, ":")
		if idx <= 0 {
			return nil, paramError(g.Name(), params, "entry %q must be value:weight", part)
		}
		weight, err := strconv.ParseFloat(part[idx+1:], 64)
		if err != nil {
			return nil, paramError(g.Name(), params, "weight %q is not a number", part[idx+1:])
		}
		if weight < 0 {
			return nil, paramError(g.Name(), params, "negative weight: %v", weight)
		}
		c.Values = append(c.Values, strings.TrimSpace(part[:idx]))
		c.Weights = append(c.Weights, weight)
		c.total += weight
	}
	if c.total == 0 {
		return nil, paramError(g.Name(), params, "total weight is zero")
	}
	return c, nil
}

func (g *WeightedChoiceGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	return pickChoice(g.Name(), rng, params)
}

func (g *WeightedChoiceGenerator) Examples() []string {
	return []string{"pick|a:3,b:1", "pick|ok:0.9,error:0.1"}
}

func pickChoice(name string, rng *randutil.Rand, params Params) (interface{}, error) {
	c, ok := params.(Choices)
	if !ok || len(c.Values) == 0 {
		return nil, notInitialized(name, params)
	}
	if c.Weights == nil {
		return c.Values[rng.IntN(len(c.Values))], nil
	}

	r := rng.Float64() * c.total
	cumWeight := 0.0
	for i, w := range c.Weights {
		cumWeight += w
		if r < cumWeight {
			return c.Values[i], nil
		}
	}
	return c.Values[len(c.Values)-1], nil
}
