// Package mock turns rule strings into generated values and renders mock
// bodies that embed ${rule} placeholders.
//
// A Dispatcher resolves each rule against a registry, parses the rule's
// parameters once and caches the immutable result, then generates a value.
// Dispatchers are safe for concurrent use.
package mock

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/mmrzaf/mockgen/internal/domain"
	"github.com/mmrzaf/mockgen/internal/generators"
	"github.com/mmrzaf/mockgen/internal/logging"
	"github.com/mmrzaf/mockgen/internal/randutil"
	"github.com/mmrzaf/mockgen/internal/registry"
)

// maxCachedRules bounds the parsed-params cache; rules past it are parsed per call.
const maxCachedRules = 4096

type Dispatcher struct {
	registry *registry.GeneratorRegistry
	rng      *randutil.Rand
	logger   *logging.Logger

	mu    sync.RWMutex
	cache map[string]prepared
}

type prepared struct {
	gen    generators.Generator
	params generators.Params
}

type Option func(*Dispatcher)

// WithSeed makes generation reproducible for rng-driven families.
func WithSeed(seed int64) Option {
	return func(d *Dispatcher) { d.rng = randutil.New(seed) }
}

func WithRand(rng *randutil.Rand) Option {
	return func(d *Dispatcher) { d.rng = rng }
}

func WithLogger(logger *logging.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger.WithComponent("dispatcher") }
}

func NewDispatcher(reg *registry.GeneratorRegistry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		cache:    make(map[string]prepared),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = randutil.NewTimeSeeded()
	}
	return d
}

// Produce generates one value for rule.
func (d *Dispatcher) Produce(rule string) (interface{}, error) {
	p, err := d.prepare(rule)
	if err != nil {
		d.debug("rule.rejected", rule, err)
		return nil, err
	}
	val, err := p.gen.Generate(d.rng, p.params)
	if err != nil {
		d.debug("rule.failed", rule, err)
		return nil, err
	}
	return val, nil
}

// ProduceString generates one value for rule and formats it as text.
func (d *Dispatcher) ProduceString(rule string) (string, error) {
	val, err := d.Produce(rule)
	if err != nil {
		return "", err
	}
	return FormatValue(val), nil
}

// Prepare checks that rule resolves and its parameters parse, without generating.
func (d *Dispatcher) Prepare(rule string) (generators.Generator, error) {
	p, err := d.prepare(rule)
	if err != nil {
		return nil, err
	}
	return p.gen, nil
}

func (d *Dispatcher) prepare(rule string) (prepared, error) {
	d.mu.RLock()
	p, ok := d.cache[rule]
	d.mu.RUnlock()
	if ok {
		return p, nil
	}

	_, segment, err := domain.SplitRule(rule)
	if err != nil {
		return prepared{}, err
	}
	gen, err := d.registry.Resolve(rule)
	if err != nil {
		return prepared{}, err
	}
	var tokens []string
	if s, ok := gen.(generators.ParamSplitter); ok {
		tokens = s.SplitParams(segment)
	} else {
		tokens = domain.SplitParams(segment)
	}
	params, err := gen.InitParam(tokens)
	if err != nil {
		return prepared{}, err
	}

	p = prepared{gen: gen, params: params}
	d.mu.Lock()
	if existing, ok := d.cache[rule]; ok {
		d.mu.Unlock()
		return existing, nil
	}
	if len(d.cache) < maxCachedRules {
		d.cache[rule] = p
	}
	d.mu.Unlock()
	return p, nil
}

func (d *Dispatcher) debug(msg, rule string, err error) {
	if d.logger == nil || !d.logger.Enabled(logging.LevelDebug) {
		return
	}
	d.logger.Debugw(msg, map[string]any{"rule": rule, "error": err.Error()})
}

// FormatValue renders a generated value as text.
func FormatValue(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
