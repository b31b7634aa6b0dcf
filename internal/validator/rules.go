package validator

import "strings"

// NotBlank returns true if a string is not empty or contains only whitespace.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// In returns true if a value is in a list of values.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}
