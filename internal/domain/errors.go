package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyRule           = errors.New("empty rule")
	ErrNoMatchingGenerator = errors.New("no matching generator")
	ErrRegistryConflict    = errors.New("registry conflict")
	ErrParameterFormat     = errors.New("parameter format")
	ErrGeneration          = errors.New("generation failed")
)

type EmptyRuleError struct {
	Rule   string
	Reason string
}

func (e *EmptyRuleError) Error() string {
	return fmt.Sprintf("malformed rule %q: %s", e.Rule, e.Reason)
}

func (e *EmptyRuleError) Unwrap() error { return ErrEmptyRule }

type NoMatchingGeneratorError struct {
	Rule string
}

func (e *NoMatchingGeneratorError) Error() string {
	return fmt.Sprintf("no generator matches rule %q", e.Rule)
}

func (e *NoMatchingGeneratorError) Unwrap() error { return ErrNoMatchingGenerator }

// RegistryConflictError reports two families that both accept Rule.
// Second is empty when the conflict is a duplicate registration.
type RegistryConflictError struct {
	First  string
	Second string
	Rule   string
}

func (e *RegistryConflictError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("generator %q registered twice", e.First)
	}
	return fmt.Sprintf("generators %q and %q both match rule %q", e.First, e.Second, e.Rule)
}

func (e *RegistryConflictError) Unwrap() error { return ErrRegistryConflict }

type ParameterFormatError struct {
	Generator string
	Params    []string
	Reason    string
}

func (e *ParameterFormatError) Error() string {
	return fmt.Sprintf("%s: invalid params [%s]: %s", e.Generator, strings.Join(e.Params, ", "), e.Reason)
}

func (e *ParameterFormatError) Unwrap() error { return ErrParameterFormat }

type GenerationError struct {
	Generator string
	Reason    string
	Err       error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Generator, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Generator, e.Reason)
}

func (e *GenerationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrGeneration, e.Err}
	}
	return []error{ErrGeneration}
}
