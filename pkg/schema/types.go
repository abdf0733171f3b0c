package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Type defines the contract for field validation and coercion.
// Implementations check a raw front-matter value and return its canonical
// form (e.g. whole floats from YAML become int64).
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Coerce validates value and returns its canonical representation.
	Coerce(value any) (any, error)
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Coerce(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", value)
	}
	return s, nil
}

// IntType validates integer values, canonicalizing to int64.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Coerce(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		// Accept floats that are whole numbers (from JSON/YAML unmarshaling)
		if v == float64(int64(v)) {
			return int64(v), nil
		}
		return nil, fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return nil, fmt.Errorf("expected int, got %T", value)
	}
}

// FloatType validates floating-point values, canonicalizing to float64.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Coerce(value any) (any, error) {
	switch v := value.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return nil, fmt.Errorf("expected float, got %T", value)
	}
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Coerce(value any) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("expected bool, got %T", value)
	}
	return b, nil
}

// SliceType validates slices of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Coerce(value any) (any, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("expected slice, got %T", value)
	}

	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem, err := t.elemType.Coerce(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, elem)
	}
	return out, nil
}

// OptionalType wraps another type, allowing the field to be absent.
type OptionalType struct {
	inner Type
}

func (t *OptionalType) Name() string { return t.inner.Name() + "?" }

func (t *OptionalType) Coerce(value any) (any, error) {
	return t.inner.Coerce(value)
}

// CustomType applies a user-defined coercion function.
type CustomType struct {
	name   string
	coerce func(any) (any, error)
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Coerce(value any) (any, error) {
	return t.coerce(value)
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// Float creates a float type validator.
func Float() Type { return &FloatType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Slice creates a slice type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// Optional marks a type as non-required.
func Optional(inner Type) Type {
	return &OptionalType{inner: inner}
}

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, coerce func(any) (any, error)) Type {
	return &CustomType{name: name, coerce: coerce}
}

// IsOptional reports whether t tolerates an absent value.
func IsOptional(t Type) bool {
	_, ok := t.(*OptionalType)
	return ok
}

// ParseType converts a string type descriptor to a Type.
// Supports basic types ("string", "int", "float", "bool"), slices
// ("[string]", "[int]", ...) and a trailing "?" marking the field optional.
func ParseType(typeStr string) (Type, error) {
	if strings.HasSuffix(typeStr, "?") {
		inner, err := ParseType(strings.TrimSuffix(typeStr, "?"))
		if err != nil {
			return nil, err
		}
		return Optional(inner), nil
	}

	// Handle slice types: [string], [int], etc.
	if len(typeStr) > 2 && typeStr[0] == '[' && typeStr[len(typeStr)-1] == ']' {
		elemType, err := ParseType(typeStr[1 : len(typeStr)-1])
		if err != nil {
			return nil, err
		}
		return Slice(elemType), nil
	}

	switch typeStr {
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", typeStr)
	}
}

// ParseTypeMap converts a map of field names to type descriptors into a Schema.
// Example: {"title": "string", "tags": "[string]", "draft": "bool?"}
func ParseTypeMap(typeMap map[string]string) (Schema, error) {
	result := make(Schema)
	for key, typeStr := range typeMap {
		t, err := ParseType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		result[key] = t
	}
	return result, nil
}
