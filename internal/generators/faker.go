package generators

import (
	"regexp"
	"sort"
	"strings"

	"github.com/go-faker/faker/v4"

	"github.com/mmrzaf/mockgen/internal/randutil"
)

// FakerKind names one faker data set.
type FakerKind string

var fakerKinds = map[FakerKind]func() string{
	"email":      func() string { return faker.Email() },
	"phone":      func() string { return faker.Phonenumber() },
	"name":       func() string { return faker.Name() },
	"first_name": func() string { return faker.FirstName() },
	"last_name":  func() string { return faker.LastName() },
	"username":   func() string { return faker.Username() },
	"url":        func() string { return faker.URL() },
	"domain":     func() string { return faker.DomainName() },
	"ipv4":       func() string { return faker.IPv4() },
	"ipv6":       func() string { return faker.IPv6() },
	"word":       func() string { return faker.Word() },
	"sentence":   func() string { return faker.Sentence() },
}

var fakerRule = regexp.MustCompile(`^faker\|[a-z0-9_]+$`)

// FakerGenerator produces realistic personal and network data. Values come
// from faker's own source and are not reproducible under a seed.
type FakerGenerator struct{}

func (g *FakerGenerator) Name() string { return "faker" }

func (g *FakerGenerator) ParamSize() int { return 1 }

func (g *FakerGenerator) Match(rule string) bool { return fakerRule.MatchString(rule) }

func (g *FakerGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	kind := FakerKind(params[0])
	if _, ok := fakerKinds[kind]; !ok {
		return nil, paramError(g.Name(), params, "unknown kind %q, want one of %s", params[0], strings.Join(FakerKinds(), ", "))
	}
	return kind, nil
}

func (g *FakerGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	kind, ok := params.(FakerKind)
	if !ok {
		return nil, notInitialized(g.Name(), params)
	}
	fn, ok := fakerKinds[kind]
	if !ok {
		return nil, generationError(g.Name(), "unknown kind "+string(kind), nil)
	}
	return fn(), nil
}

func (g *FakerGenerator) Examples() []string {
	return []string{"faker|email", "faker|phone", "faker|first_name"}
}

// FakerKinds lists the supported kinds in sorted order.
func FakerKinds() []string {
	kinds := make([]string, 0, len(fakerKinds))
	for k := range fakerKinds {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return kinds
}
