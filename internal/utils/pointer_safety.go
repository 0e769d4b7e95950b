package utils

import "strings"

func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

func Ptr[T any](v T) *T {
	return &v
}

// NonEmpty reports whether v points at a string that is not blank
func NonEmpty(v *string) bool {
	return v != nil && strings.TrimSpace(*v) != ""
}
