package generators

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/mmrzaf/mockgen/internal/randutil"
)

// UUIDVersion selects the UUID flavor.
type UUIDVersion string

const (
	UUIDv4    UUIDVersion = "v4"
	UUIDv7    UUIDVersion = "v7"
	UUIDShort UUIDVersion = "short"
)

var uuidRule = regexp.MustCompile(`^uuid\|(v4|v7|short)$`)

type UUIDGenerator struct{}

func (g *UUIDGenerator) Name() string { return "uuid" }

func (g *UUIDGenerator) ParamSize() int { return 1 }

func (g *UUIDGenerator) Match(rule string) bool { return uuidRule.MatchString(rule) }

func (g *UUIDGenerator) InitParam(params []string) (Params, error) {
	if err := checkParamSize(g, params); err != nil {
		return nil, err
	}
	switch v := UUIDVersion(params[0]); v {
	case UUIDv4, UUIDv7, UUIDShort:
		return v, nil
	default:
		return nil, paramError(g.Name(), params, "unknown version %q", params[0])
	}
}

func (g *UUIDGenerator) Generate(rng *randutil.Rand, params Params) (interface{}, error) {
	v, ok := params.(UUIDVersion)
	if !ok {
		return nil, notInitialized(g.Name(), params)
	}
	switch v {
	case UUIDv7:
		u, err := uuid.NewV7()
		if err != nil {
			return nil, generationError(g.Name(), "v7", err)
		}
		return u.String(), nil
	case UUIDShort:
		u, err := randomV4(rng)
		if err != nil {
			return nil, generationError(g.Name(), "short", err)
		}
		return u.String()[:8], nil
	default:
		u, err := randomV4(rng)
		if err != nil {
			return nil, generationError(g.Name(), "v4", err)
		}
		return u.String(), nil
	}
}

func (g *UUIDGenerator) Examples() []string {
	return []string{"uuid|v4", "uuid|v7", "uuid|short"}
}

// randomV4 draws the UUID bytes from rng so seeded runs repeat.
func randomV4(rng *randutil.Rand) (uuid.UUID, error) {
	uuidBytes := make([]byte, 16)
	rng.Read(uuidBytes)
	uuidBytes[6] = (uuidBytes[6] & 0x0f) | 0x40
	uuidBytes[8] = (uuidBytes[8] & 0x3f) | 0x80
	return uuid.FromBytes(uuidBytes)
}
