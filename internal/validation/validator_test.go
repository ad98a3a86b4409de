package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/mmrzaf/mockgen/internal/domain"
	"github.com/mmrzaf/mockgen/internal/registry"
)

func TestIsValidIdentifier(t *testing.T) {
	ok := []string{"a", "A", "_a", "a1", "user-profile", "orders.v2", "1a"}
	bad := []string{"", "-a", ".hidden", "a b", "a;b", "a/b", "a\\b", "a..b", "../x"}

	for _, s := range ok {
		if !IsValidIdentifier(s) {
			t.Fatalf("expected valid: %q", s)
		}
	}
	for _, s := range bad {
		if IsValidIdentifier(s) {
			t.Fatalf("expected invalid: %q", s)
		}
	}
}

func TestValidateRegistry(t *testing.T) {
	v := NewValidator(registry.DefaultGeneratorRegistry())
	if err := v.ValidateRegistry(); err != nil {
		t.Fatal(err)
	}
	if err := NewValidator(registry.NewGeneratorRegistry()).ValidateRegistry(); err == nil {
		t.Fatal("expected error for empty registry")
	}
}

func TestValidateMock(t *testing.T) {
	v := NewValidator(registry.DefaultGeneratorRegistry())
	good := &domain.MockDefinition{
		ID:          "user",
		Name:        "User",
		ContentType: domain.ContentTypeJSON,
		Status:      200,
		Body:        `{"id": "${int|1-100}", "name": "${en|3-9}", "tags": ["${list|[a,b]}"]}`,
	}
	if err := v.ValidateMock(good); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		edit func(*domain.MockDefinition)
		want string
	}{
		{"missing id", func(d *domain.MockDefinition) { d.ID = "" }, "id is required"},
		{"bad id", func(d *domain.MockDefinition) { d.ID = "a/b" }, "invalid mock id"},
		{"missing name", func(d *domain.MockDefinition) { d.Name = "" }, "name is required"},
		{"content type", func(d *domain.MockDefinition) { d.ContentType = "text/html" }, "content_type"},
		{"status", func(d *domain.MockDefinition) { d.Status = 42 }, "status"},
		{"bad rule", func(d *domain.MockDefinition) { d.Body = `{"n": "${en|9-3}"}` }, "en|9-3"},
		{"unknown rule", func(d *domain.MockDefinition) { d.Body = `{"n": "${xx|1-2}"}` }, "xx|1-2"},
		{"broken json", func(d *domain.MockDefinition) { d.Body = `{"n": ${en|1-3}}` }, "not valid JSON"},
		{"schema", func(d *domain.MockDefinition) {
			d.Schema = map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"id", "email"},
			}
		}, "violates schema"},
		{"bad schema", func(d *domain.MockDefinition) {
			d.Schema = map[string]interface{}{"type": 12}
		}, "schema compilation"},
	}
	for _, tt := range tests {
		def := *good
		tt.edit(&def)
		err := v.ValidateMock(&def)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tt.name, tt.want, err)
		}
	}
}

func TestValidateMock_KeepsTypedRuleErrors(t *testing.T) {
	v := NewValidator(registry.DefaultGeneratorRegistry())
	err := v.ValidateMock(&domain.MockDefinition{ID: "x", Name: "x", Body: "${int|9-1}"})
	if !errors.Is(err, domain.ErrParameterFormat) {
		t.Fatalf("expected ErrParameterFormat, got %v", err)
	}
}

func TestValidateMocks_RejectsDuplicateIDs(t *testing.T) {
	v := NewValidator(registry.DefaultGeneratorRegistry())
	a := &domain.MockDefinition{ID: "a", Name: "A", Body: "plain"}
	if err := v.ValidateMocks([]*domain.MockDefinition{a, a}); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestValidateMock_SchemaAcceptsRenderedBody(t *testing.T) {
	v := NewValidator(registry.DefaultGeneratorRegistry())
	def := &domain.MockDefinition{
		ID:          "item",
		Name:        "Item",
		ContentType: domain.ContentTypeJSON,
		Body:        `{"id": "${int|1-100}", "sku": "${regex|[A-Z]{3}-\d{3}}"}`,
		Schema: map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"id", "sku"},
			"properties": map[string]interface{}{
				"id":  map[string]interface{}{"type": "number", "minimum": 1, "maximum": 99},
				"sku": map[string]interface{}{"type": "string", "pattern": "^[A-Z]{3}-[0-9]{3}$"},
			},
		},
	}
	for i := 0; i < 20; i++ {
		if err := v.ValidateMock(def); err != nil {
			t.Fatal(err)
		}
	}
}
