package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/mmrzaf/mockgen/internal/domain"
	"github.com/mmrzaf/mockgen/internal/generators"
)

// GeneratorRegistry holds generators in registration order. It is built at
// startup and only read afterwards.
type GeneratorRegistry struct {
	mu         sync.RWMutex
	generators []generators.Generator
}

func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{}
}

// Register appends gen. A second generator with the same name and param size
// is rejected.
func (r *GeneratorRegistry) Register(gen generators.Generator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.generators {
		if existing.Name() == gen.Name() && existing.ParamSize() == gen.ParamSize() {
			return &domain.RegistryConflictError{First: gen.Name()}
		}
	}
	r.generators = append(r.generators, gen)
	return nil
}

// Resolve returns the first registered generator that matches rule.
func (r *GeneratorRegistry) Resolve(rule string) (generators.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, gen := range r.generators {
		if gen.Match(rule) {
			return gen, nil
		}
	}
	return nil, &domain.NoMatchingGeneratorError{Rule: rule}
}

func (r *GeneratorRegistry) List() []domain.GeneratorDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.GeneratorDescriptor, 0, len(r.generators))
	for _, gen := range r.generators {
		out = append(out, describe(gen))
	}
	return out
}

// Validate feeds every generator's example rules to every other generator and
// fails on the first rule two families both accept.
func (r *GeneratorRegistry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i, gen := range r.generators {
		for _, rule := range examples(gen) {
			if !gen.Match(rule) {
				return fmt.Errorf("generator %q does not match its own example %q", gen.Name(), rule)
			}
			for j, other := range r.generators {
				if i == j {
					continue
				}
				if other.Match(rule) {
					return &domain.RegistryConflictError{First: gen.Name(), Second: other.Name(), Rule: rule}
				}
			}
		}
	}
	return nil
}

func describe(gen generators.Generator) domain.GeneratorDescriptor {
	return domain.GeneratorDescriptor{
		Name:      gen.Name(),
		ParamSize: gen.ParamSize(),
		Examples:  examples(gen),
	}
}

func examples(gen generators.Generator) []string {
	if d, ok := gen.(generators.Describer); ok {
		return d.Examples()
	}
	return nil
}

// factories maps family tags to constructors, in default registration order.
var factories = []struct {
	name string
	new  func() generators.Generator
}{
	{"en", func() generators.Generator { return &generators.EnStringGenerator{} }},
	{"zh", func() generators.Generator { return &generators.ZhStringGenerator{} }},
	{"int", func() generators.Generator { return &generators.UniformIntGenerator{} }},
	{"double", func() generators.Generator { return &generators.UniformFloatGenerator{} }},
	{"digits", func() generators.Generator { return &generators.DigitsGenerator{} }},
	{"bool", func() generators.Generator { return &generators.BoolGenerator{} }},
	{"list", func() generators.Generator { return &generators.ChoiceGenerator{} }},
	{"pick", func() generators.Generator { return &generators.WeightedChoiceGenerator{} }},
	{"date", func() generators.Generator { return &generators.DateGenerator{Now: time.Now} }},
	{"current", func() generators.Generator { return &generators.CurrentTimeGenerator{Now: time.Now} }},
	{"regex", func() generators.Generator { return &generators.RegexGenerator{} }},
	{"faker", func() generators.Generator { return &generators.FakerGenerator{} }},
	{"uuid", func() generators.Generator { return &generators.UUIDGenerator{} }},
	{"expr", func() generators.Generator { return &generators.ExprGenerator{} }},
}

// Names lists every known family tag in default order.
func Names() []string {
	names := make([]string, len(factories))
	for i, f := range factories {
		names[i] = f.name
	}
	return names
}

// FromConfig builds a validated registry holding the named families in the
// given order. An empty list selects every family.
func FromConfig(names []string) (*GeneratorRegistry, error) {
	if len(names) == 0 {
		names = Names()
	}
	r := NewGeneratorRegistry()
	for _, name := range names {
		var gen generators.Generator
		for _, f := range factories {
			if f.name == name {
				gen = f.new()
				break
			}
		}
		if gen == nil {
			return nil, fmt.Errorf("unknown generator: %s", name)
		}
		if err := r.Register(gen); err != nil {
			return nil, err
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func DefaultGeneratorRegistry() *GeneratorRegistry {
	r, err := FromConfig(nil)
	if err != nil {
		panic(fmt.Sprintf("default generator set is inconsistent: %v", err))
	}
	return r
}
