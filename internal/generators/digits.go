package generators

import (
	"regexp"
	"strconv"

	"github.com/mmrzaf/mockgen/internal/randutil"
)

// DigitCount is the exact length of a generated digit string.
type DigitCount int

var digitsRule = regexp.MustCompile(`^digits\|\d+$`)

// DigitsGenerator produces fixed-length strings of decimal digits, e.g. codes
// or account numbers where leading zeros matter.
type DigitsGenerator struct{}

func (g *DigitsGenerator) Name() string { return "digits" }

func (g *DigitsGenerator) ParamSize() int { return 1 }

func (g *DigitsGenerator) Match(rule string) bool { return digitsRule.MatchString(rule) }

func (g *DigitsGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(params[0])
	if err != nil {
		return nil, paramError(g.Name(), params, "length %q is not an integer", params[0])
	}
	if n <= 0 || n > MaxLength {
		return nil, paramError(g.Name(), params, "length must be in [1, %d], got %d", MaxLength, n)
	}
	return DigitCount(n), nil
}

func (g *DigitsGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	n, ok := params.(DigitCount)
	if !ok {
		return nil, notInitialized(g.Name(), params)
	}
	s, err := rng.RandomString(int(n), randutil.Digits)
	if err != nil {
		return nil, generationError(g.Name(), "digits", err)
	}
	return s, nil
}

func (g *DigitsGenerator) Examples() []string {
	return []string{"digits|6", "digits|11"}
}
