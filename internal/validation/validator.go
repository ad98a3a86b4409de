package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mmrzaf/mockgen/internal/domain"
	"github.com/mmrzaf/mockgen/internal/mock"
	"github.com/mmrzaf/mockgen/internal/registry"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

type Validator struct {
	genRegistry *registry.GeneratorRegistry
	dispatcher  *mock.Dispatcher
}

func NewValidator(genRegistry *registry.GeneratorRegistry) *Validator {
	return &Validator{
		genRegistry: genRegistry,
		dispatcher:  mock.NewDispatcher(genRegistry),
	}
}

// mock ids double as file names and CLI arguments.
var identRe = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)

func IsValidIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "..") {
		return false
	}
	return identRe.MatchString(s)
}

func IsValidContentType(ct string) bool {
	switch ct {
	case "", domain.ContentTypeJSON, domain.ContentTypeText:
		return true
	}
	return false
}

// ValidateRegistry fails when two registered generators accept the same rule.
func (v *Validator) ValidateRegistry() error {
	if len(v.genRegistry.List()) == 0 {
		return errors.New("generator registry is empty")
	}
	return v.genRegistry.Validate()
}

func (v *Validator) ValidateMock(def *domain.MockDefinition) error {
	if def.ID == "" {
		return errors.New("mock id is required")
	}
	if !IsValidIdentifier(def.ID) {
		return fmt.Errorf("invalid mock id: %s", def.ID)
	}
	if def.Name == "" {
		return errors.New("mock name is required")
	}
	if !IsValidContentType(def.ContentType) {
		return fmt.Errorf("unsupported content_type: %s", def.ContentType)
	}
	if def.Status != 0 && (def.Status < 100 || def.Status > 599) {
		return fmt.Errorf("status must be between 100 and 599, got %d", def.Status)
	}

	for _, rule := range mock.Placeholders(def.Body) {
		if _, err := v.dispatcher.Prepare(rule); err != nil {
			return fmt.Errorf("placeholder ${%s}: %w", rule, err)
		}
	}

	if def.ContentType == domain.ContentTypeJSON {
		if err := v.validateJSONBody(def); err != nil {
			return fmt.Errorf("body: %w", err)
		}
	}
	return nil
}

// ValidateMocks checks every definition and rejects duplicate ids.
func (v *Validator) ValidateMocks(defs []*domain.MockDefinition) error {
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if err := v.ValidateMock(def); err != nil {
			return fmt.Errorf("mock '%s': %w", def.ID, err)
		}
		if seen[def.ID] {
			return fmt.Errorf("duplicate mock id: %s", def.ID)
		}
		seen[def.ID] = true
	}
	return nil
}

// validateJSONBody renders the body once, checks the result parses and, when
// the mock carries a schema, that it satisfies it.
func (v *Validator) validateJSONBody(def *domain.MockDefinition) error {
	out, err := v.dispatcher.RenderJSON(def.Body)
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		return fmt.Errorf("rendered body is not valid JSON: %w", err)
	}
	if len(def.Schema) == 0 {
		return nil
	}

	schema, err := compileSchema(def.ID, def.Schema)
	if err != nil {
		return fmt.Errorf("schema compilation error: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("rendered body violates schema: %s", firstCause(verr))
		}
		return err
	}
	return nil
}

func compileSchema(id string, raw map[string]interface{}) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	url := id + ".schema.json"
	if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}

// firstCause walks to the deepest error so the message names the failing field.
func firstCause(err *jsonschema.ValidationError) string {
	for len(err.Causes) > 0 {
		err = err.Causes[0]
	}
	if err.InstanceLocation == "" {
		return err.Message
	}
	return err.InstanceLocation + ": " + err.Message
}
