package generators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmrzaf/mockgen/internal/domain"
	"github.com/mmrzaf/mockgen/internal/randutil"
)

// Params is the immutable, parsed form of a rule's parameters. Each family
// defines its own concrete type; generators never keep params between calls.
type Params any

// Generator is one rule family. Match must accept the whole rule text,
// InitParam turns the split parameter tokens into Params, and Generate
// produces a value from those Params.
type Generator interface {
	Name() string
	ParamSize() int
	Match(rule string) bool
	InitParam(params []string) (Params, error)
	Generate(rng *randutil.Rand, params Params) (interface{}, error)
}

// ParamSplitter is implemented by families whose parameter segment is not
// split on the rule delimiter.
type ParamSplitter interface {
	SplitParams(segment string) []string
}

// Describer exposes sample rules for registry conflict checks.
type Describer interface {
	Examples() []string
}

func checkParamSize(g Generator, params []string) error {
	if len(params) != g.ParamSize() {
		return paramError(g.Name(), params, "expected %d param(s), got %d", g.ParamSize(), len(params))
	}
	return nil
}

func paramError(name string, params []string, format string, args ...interface{}) error {
	return &domain.ParameterFormatError{Generator: name, Params: params, Reason: fmt.Sprintf(format, args...)}
}

func generationError(name string, reason string, err error) error {
	return &domain.GenerationError{Generator: name, Reason: reason, Err: err}
}

func notInitialized(name string, params Params) error {
	return generationError(name, fmt.Sprintf("params not initialized (got %T)", params), nil)
}

// parseIntRange parses a "min-max" token with min < max.
func parseIntRange(name string, params []string, token string) (int64, int64, error) {
	lo, hi, ok := strings.Cut(token, "-")
	if !ok {
		return 0, 0, paramError(name, params, "range %q must be min-max", token)
	}
	min, err := strconv.ParseInt(lo, 10, 64)
	if err != nil {
		return 0, 0, paramError(name, params, "min %q is not an integer", lo)
	}
	max, err := strconv.ParseInt(hi, 10, 64)
	if err != nil {
		return 0, 0, paramError(name, params, "max %q is not an integer", hi)
	}
	if min < 0 {
		return 0, 0, paramError(name, params, "min (%d) must not be negative", min)
	}
	if min >= max {
		return 0, 0, paramError(name, params, "min (%d) must be less than max (%d)", min, max)
	}
	return min, max, nil
}

func verbatim(segment string) []string {
	return []string{segment}
}
