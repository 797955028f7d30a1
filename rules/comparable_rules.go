package rules

import "fmt"

// RequiredValue validates that a comparable field is not its zero value.
// Default code "Required".
func RequiredValue[T any, V comparable](field string, get func(T) V, opts ...Option) Rule[T] {
	var zero V
	return Field(field, "Required", "field is required", func(dto T) bool {
		return get(dto) != zero
	}, opts...)
}

// Range validates that a numeric field lies within [min, max].
// Default code "Range".
func Range[T any, N Numeric](field string, min, max N, get func(T) N, opts ...Option) Rule[T] {
	msg := fmt.Sprintf("must be between %v and %v", min, max)
	return Field(field, "Range", msg, func(dto T) bool {
		v := get(dto)
		return v >= min && v <= max
	}, opts...)
}

// OneOf validates that a field equals one of the allowed values.
// Default code "OneOf".
func OneOf[T any, V comparable](field string, allowed []V, get func(T) V, opts ...Option) Rule[T] {
	msg := fmt.Sprintf("must be one of %v", allowed)
	return Field(field, "OneOf", msg, func(dto T) bool {
		v := get(dto)
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	}, opts...)
}
