package generators

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/mmrzaf/mockgen/internal/randutil"
	"github.com/mmrzaf/mockgen/internal/timeutil"
)

// DateWindow is a [From, To) window and the layout used to print the result.
// Relative bounds are resolved when a value is generated.
type DateWindow struct {
	From   timeutil.Bound
	To     timeutil.Bound
	Layout string
}

// TimeLayout is the layout of a current-time rule.
type TimeLayout string

var (
	dateRule    = regexp.MustCompile(`^date\|[^|~]+~[^|~]+\|[^|]+$`)
	currentRule = regexp.MustCompile(`^current\|[^|]+$`)
)

// DateGenerator produces a formatted time uniformly inside a window.
type DateGenerator struct {
	Now func() time.Time
}

func (g *DateGenerator) Name() string { return "date" }

func (g *DateGenerator) ParamSize() int { return 2 }

func (g *DateGenerator) Match(rule string) bool { return dateRule.MatchString(rule) }

func (g *DateGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	lo, hi, ok := strings.Cut(params[0], "~")
	if !ok {
		return nil, paramError(g.Name(), params, "window %q must be from~to", params[0])
	}
	from, err := timeutil.ParseBound(lo)
	if err != nil {
		return nil, paramError(g.Name(), params, "invalid from: %v", err)
	}
	to, err := timeutil.ParseBound(hi)
	if err != nil {
		return nil, paramError(g.Name(), params, "invalid to: %v", err)
	}
	now := nowFunc(g.Now)()
	if !from.Resolve(now).Before(to.Resolve(now)) {
		return nil, paramError(g.Name(), params, "from must be before to")
	}
	layout, err := timeutil.Layout(params[1])
	if err != nil {
		return nil, paramError(g.Name(), params, "%v", err)
	}
	return DateWindow{From: from, To: to, Layout: layout}, nil
}

func (g *DateGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	w, ok := params.(DateWindow)
	if !ok {
		return nil, notInitialized(g.Name(), params)
	}
	now := nowFunc(g.Now)()
	from, to := w.From.Resolve(now), w.To.Resolve(now)
	t, err := randomTime(rng, from, to)
	if err != nil {
		return nil, generationError(g.Name(), "window", err)
	}
	return timeutil.Format(t, w.Layout), nil
}

// maxRedraws bounds rejection sampling for windows wider than a time.Duration.
const maxRedraws = 64

// randomTime draws uniformly from [from, to). Windows longer than about 292
// years overflow time.Duration, so those are drawn as whole seconds plus a
// nanosecond part and redrawn when they land past to.
func randomTime(rng *randutil.Rand, from, to time.Time) (time.Time, error) {
	if span := to.Sub(from); span < time.Duration(math.MaxInt64) {
		offset, err := rng.RandomInt64(0, int64(span))
		if err != nil {
			return time.Time{}, err
		}
		return from.Add(time.Duration(offset)), nil
	}

	secs := to.Unix() - from.Unix()
	for i := 0; i < maxRedraws; i++ {
		off, err := rng.RandomInt64(0, secs)
		if err != nil {
			return time.Time{}, err
		}
		ns, err := rng.RandomInt64(0, int64(time.Second))
		if err != nil {
			return time.Time{}, err
		}
		t := time.Unix(from.Unix()+off, int64(from.Nanosecond())+ns).In(from.Location())
		if t.Before(to) {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no time drawn inside [%s, %s)", from, to)
}

func (g *DateGenerator) Examples() []string {
	return []string{"date|-7d~now|date", "date|2024-01-01~2024-12-31|yyyy-MM-dd HH:mm:ss"}
}

// CurrentTimeGenerator prints the current time.
type CurrentTimeGenerator struct {
	Now func() time.Time
}

func (g *CurrentTimeGenerator) Name() string { return "current" }

func (g *CurrentTimeGenerator) ParamSize() int { return 1 }

func (g *CurrentTimeGenerator) Match(rule string) bool { return currentRule.MatchString(rule) }

func (g *CurrentTimeGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	layout, err := timeutil.Layout(params[0])
	if err != nil {
		return nil, paramError(g.Name(), params, "%v", err)
	}
	return TimeLayout(layout), nil
}

func (g *CurrentTimeGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	layout, ok := params.(TimeLayout)
	if !ok {
		return nil, notInitialized(g.Name(), params)
	}
	return timeutil.Format(nowFunc(g.Now)(), string(layout)), nil
}

func (g *CurrentTimeGenerator) Examples() []string {
	return []string{"current|rfc3339", "current|yyyy-MM-dd"}
}

func nowFunc(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
