package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"

	"github.com/mmrzaf/mockgen/internal/domain"
)

// HashMock fingerprints the fields of a definition that affect rendering.
func HashMock(def *domain.MockDefinition) (string, error) {
	data, err := json.Marshal(canonicalizeMock(def))
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func canonicalizeMock(def *domain.MockDefinition) map[string]interface{} {
	result := map[string]interface{}{
		"id":   def.ID,
		"body": def.Body,
	}
	if def.ContentType != "" {
		result["content_type"] = def.ContentType
	}
	if def.Status != 0 {
		result["status"] = def.Status
	}
	if len(def.Schema) > 0 {
		result["schema"] = def.Schema
	}
	return result
}

type seedPayload struct {
	Seed int64  `json:"seed"`
	Key  string `json:"key"`
}

// DeriveSeed mixes a base seed with a key so each mock gets its own stream.
func DeriveSeed(seed int64, key string) int64 {
	b, _ := json.Marshal(seedPayload{Seed: seed, Key: key})
	sum := sha256.Sum256(b)
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
