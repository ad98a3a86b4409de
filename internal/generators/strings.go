package generators

import (
	"regexp"

	"github.com/mmrzaf/mockgen/internal/randutil"
)

// MaxLength caps the length of generated strings.
const MaxLength = 1 << 16

// LengthRange bounds the length of a generated string to [Min, Max).
type LengthRange struct {
	Min int
	Max int
}

var (
	enRule = regexp.MustCompile(`^en\|\d+-\d+$`)
	zhRule = regexp.MustCompile(`^zh\|\d+-\d+$`)
)

// EnStringGenerator produces strings of ASCII letters.
type EnStringGenerator struct{}

func (g *EnStringGenerator) Name() string { return "en" }

func (g *EnStringGenerator) ParamSize() int { return 1 }

func (g *EnStringGenerator) Match(rule string) bool { return enRule.MatchString(rule) }

func (g *EnStringGenerator) InitParam(params []string) (Params, error) {
	return parseLengthRange(g, params)
}

func (g *EnStringGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	return generateText(g.Name(), rng, params, randutil.Letters)
}

func (g *EnStringGenerator) Examples() []string {
	return []string{"en|1-10", "en|5-6", "en|0-32"}
}

// ZhStringGenerator produces strings of Chinese characters.
type ZhStringGenerator struct{}

func (g *ZhStringGenerator) Name() string { return "zh" }

func (g *ZhStringGenerator) ParamSize() int { return 1 }

func (g *ZhStringGenerator) Match(rule string) bool { return zhRule.MatchString(rule) }

func (g *ZhStringGenerator) InitParam(params []string) (Params, error) {
	return parseLengthRange(g, params)
}

func (g *ZhStringGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	return generateText(g.Name(), rng, params, randutil.Hanzi)
}

func (g *ZhStringGenerator) Examples() []string {
	return []string{"zh|1-10", "zh|2-3"}
}

func parseLengthRange(g Generator, params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	min, max, err := parseIntRange(g.Name(), params, params[0])
	if err != nil {
		return nil, err
	}
	if max > MaxLength+1 {
		return nil, paramError(g.Name(), params, "max (%d) exceeds length limit %d", max, MaxLength)
	}
	return LengthRange{Min: int(min), Max: int(max)}, nil
}

func generateText(name string, rng *randutil.Rand, params Params, pool []rune) (interface{}, error) {
	p, ok := params.(LengthRange)
	if !ok {
		return nil, notInitialized(name, params)
	}
	n, err := rng.RandomInt(p.Min, p.Max)
	if err != nil {
		return nil, generationError(name, "length", err)
	}
	s, err := rng.RandomString(n, pool)
	if err != nil {
		return nil, generationError(name, "text", err)
	}
	return s, nil
}
