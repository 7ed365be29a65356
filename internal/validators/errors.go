package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-model-config/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrNilParameter    = errors.New("nil parameter")
	ErrNilConfig       = errors.New("nil resolved config")

	// ErrDuplicateParameterType matches every *DuplicateParameterTypeError.
	ErrDuplicateParameterType = errors.New("duplicate parameter type")
	// ErrConstraintViolation matches every *ConstraintViolationError.
	ErrConstraintViolation = errors.New("constraint violation")

	ErrContextLengthTooShort            = errors.New("context length too short")
	ErrPromptOrGenerationLengthTooLarge = errors.New("prompt length or generation length too large")
)

// DuplicateParameterTypeError reports a parameter kind that was supplied
// more than once in a single build call.
type DuplicateParameterTypeError struct {
	Kind  models.Kind
	Count int
}

func (e *DuplicateParameterTypeError) Error() string {
	return fmt.Sprintf("duplicate parameter type %s: supplied %d times", e.Kind, e.Count)
}

// Is reports whether target is ErrDuplicateParameterType.
func (e *DuplicateParameterTypeError) Is(target error) bool {
	return target == ErrDuplicateParameterType
}

// Constraint names a numeric rule checked on a resolved configuration.
type Constraint string

const (
	// ConstraintContextLengthTooShort: max_context_length must be greater than 1.
	ConstraintContextLengthTooShort Constraint = "context_length_too_short"
	// ConstraintPromptOrGenerationLengthTooLarge: max_prompt_length +
	// max_generation_length must not exceed max_context_length.
	ConstraintPromptOrGenerationLengthTooLarge Constraint = "prompt_length_or_generation_length_too_large"
)

var constraintErrors = map[Constraint]error{
	ConstraintContextLengthTooShort:            ErrContextLengthTooShort,
	ConstraintPromptOrGenerationLengthTooLarge: ErrPromptOrGenerationLengthTooLarge,
}

// KindValue is a literal field value quoted in a constraint diagnostic.
type KindValue struct {
	Kind  models.Kind
	Value uint64
}

// ConstraintViolationError reports which constraint failed and the resolved
// values it was evaluated against.
type ConstraintViolationError struct {
	Constraint Constraint
	Values     []KindValue
}

func (e *ConstraintViolationError) Error() string {
	values := make([]string, 0, len(e.Values))
	for _, v := range e.Values {
		values = append(values, fmt.Sprintf("%s=%d", v.Kind, v.Value))
	}
	return fmt.Sprintf("constraint %s violated: %s", e.Constraint, strings.Join(values, ", "))
}

// Is reports whether target is ErrConstraintViolation or the sentinel of
// the failed constraint.
func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation || target == constraintErrors[e.Constraint]
}
