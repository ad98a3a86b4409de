package domain

type MockDefinition struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Status      int    `json:"status,omitempty" yaml:"status,omitempty"`
	Body        string `json:"body" yaml:"body"`
	// Schema is an optional JSON Schema the rendered body must satisfy.
	Schema map[string]interface{} `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// GeneratorsFile lists the generator families to register, in order.
type GeneratorsFile struct {
	Generators []string `json:"generators" yaml:"generators"`
}

type GeneratorDescriptor struct {
	Name      string   `json:"name" yaml:"name"`
	ParamSize int      `json:"param_size" yaml:"param_size"`
	Examples  []string `json:"examples,omitempty" yaml:"examples,omitempty"`
}

type RenderedMock struct {
	ID          string `json:"id" yaml:"id"`
	ContentType string `json:"content_type" yaml:"content_type"`
	Status      int    `json:"status" yaml:"status"`
	Body        string `json:"body" yaml:"body"`
}

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
)
