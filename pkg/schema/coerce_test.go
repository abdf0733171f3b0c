package schema

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCoerce_Success(t *testing.T) {
	schema := Schema{
		"title":   String(),
		"weight":  Int(),
		"rating":  Float(),
		"draft":   Bool(),
		"tags":    Slice(String()),
		"summary": Optional(String()),
	}

	data := map[string]any{
		"title":  "Hello",
		"weight": 3,
		"rating": 4.5,
		"draft":  true,
		"tags":   []any{"go", "content"},
		// summary absent: optional
	}

	out, err := Coerce(schema, data)
	if err != nil {
		t.Fatalf("Coerce() error = %v, want nil", err)
	}

	if out["weight"] != int64(3) {
		t.Errorf("weight = %v (%T), want int64(3)", out["weight"], out["weight"])
	}
	if out["title"] != "Hello" {
		t.Errorf("title = %v, want Hello", out["title"])
	}
}

func TestCoerce_MissingField(t *testing.T) {
	schema := Schema{
		"title":  String(),
		"weight": Int(),
	}

	data := map[string]any{
		"title": "Hello",
		// missing weight
	}

	_, err := Coerce(schema, data)
	if err == nil {
		t.Fatal("Coerce() should return error for missing field")
	}

	aggr, ok := err.(*AggregateError)
	if !ok {
		t.Fatalf("error should be *AggregateError, got %T", err)
	}

	if len(aggr.Errors) != 1 {
		t.Errorf("Coerce() = %d errors, want 1", len(aggr.Errors))
	}

	validErr, ok := aggr.Errors[0].(*ValidationError)
	if !ok {
		t.Fatalf("error should be *ValidationError, got %T", aggr.Errors[0])
	}

	if validErr.Key != "weight" {
		t.Errorf("error Key = %q, want weight", validErr.Key)
	}
}

func TestCoerce_TypeMismatch(t *testing.T) {
	schema := Schema{
		"title": String(),
	}

	data := map[string]any{
		"title": 42,
	}

	_, err := Coerce(schema, data)
	if err == nil {
		t.Fatal("Coerce() should return error for type mismatch")
	}

	aggr, ok := err.(*AggregateError)
	if !ok {
		t.Fatalf("error should be *AggregateError, got %T", err)
	}

	validErr, ok := aggr.Errors[0].(*ValidationError)
	if !ok {
		t.Fatalf("error should be *ValidationError, got %T", aggr.Errors[0])
	}
	if validErr.Key != "title" {
		t.Errorf("error Key = %q, want title", validErr.Key)
	}
}

func TestCoerce_WholeFloatBecomesInt(t *testing.T) {
	schema := Schema{"weight": Int()}

	out, err := Coerce(schema, map[string]any{"weight": float64(7)})
	if err != nil {
		t.Fatalf("Coerce() error = %v, want nil", err)
	}
	if out["weight"] != int64(7) {
		t.Errorf("weight = %v (%T), want int64(7)", out["weight"], out["weight"])
	}

	_, err = Coerce(schema, map[string]any{"weight": 7.5})
	if err == nil {
		t.Error("Coerce() should reject non-whole float for int field")
	}
}

func TestCoerce_UnknownFieldsPassThrough(t *testing.T) {
	schema := Schema{"title": String()}

	data := map[string]any{
		"title": "Hello",
		"extra": map[string]any{"nested": true},
	}

	out, err := Coerce(schema, data)
	if err != nil {
		t.Fatalf("Coerce() error = %v, want nil", err)
	}
	if _, ok := out["extra"]; !ok {
		t.Error("unknown field should pass through untouched")
	}
}

func TestCoerce_EmptySchemaIsPassthrough(t *testing.T) {
	data := map[string]any{"anything": 42}

	out, err := Coerce(nil, data)
	if err != nil {
		t.Fatalf("Coerce() error = %v, want nil", err)
	}
	if out["anything"] != 42 {
		t.Errorf("anything = %v, want 42", out["anything"])
	}

	// Input map must not alias the result.
	out["anything"] = 0
	if data["anything"] != 42 {
		t.Error("Coerce mutated its input map")
	}
}

func TestCoerce_AggregatesMultipleFailures(t *testing.T) {
	schema := Schema{
		"title":  String(),
		"weight": Int(),
	}

	_, err := Coerce(schema, map[string]any{
		"title":  42,
		"weight": "heavy",
	})
	if err == nil {
		t.Fatal("Coerce() should return error")
	}

	if got := len(ValidationErrors(err)); got != 2 {
		t.Errorf("ValidationErrors() = %d, want 2", got)
	}
	if !strings.Contains(err.Error(), "2 invalid fields") {
		t.Errorf("aggregate message = %q", err.Error())
	}
}

func TestValidationErrors_SeeThroughWrapping(t *testing.T) {
	schema := Schema{"title": String()}

	_, err := Coerce(schema, map[string]any{})
	wrapped := fmt.Errorf("entry blog/a.md: %w", err)

	if got := len(ValidationErrors(wrapped)); got != 1 {
		t.Errorf("ValidationErrors(wrapped) = %d, want 1", got)
	}

	var fieldErr *ValidationError
	if !errors.As(wrapped, &fieldErr) {
		t.Fatal("field failure not reachable through the wrap chain")
	}
	if fieldErr.Key != "title" {
		t.Errorf("Key = %q, want title", fieldErr.Key)
	}
}
