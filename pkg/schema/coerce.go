package schema

// Schema is a map of field names to their expected types.
// Example: {"title": String(), "weight": Int(), "tags": Slice(String())}
type Schema map[string]Type

// Coerce validates data against the schema and returns the canonicalized
// mapping. Fields named by the schema are required unless Optional; fields
// not named by the schema pass through untouched. The input map is never
// mutated. Returns an error aggregating all failures found.
func Coerce(schema Schema, data map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	if len(schema) == 0 {
		// No schema = no validation
		return out, nil
	}

	var errs []error

	for fieldName, fieldType := range schema {
		value, exists := data[fieldName]
		if !exists {
			if IsOptional(fieldType) {
				continue
			}
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "required",
				Value:  nil,
			})
			continue
		}

		coerced, err := fieldType.Coerce(value)
		if err != nil {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: err.Error(),
				Value:  value,
			})
			continue
		}
		out[fieldName] = coerced
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}

	return out, nil
}
