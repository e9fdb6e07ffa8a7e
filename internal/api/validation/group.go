package validation

import "strings"

// GroupInput mirrors the fields of a create development group request.
type GroupInput struct {
	Name string
}

// ValidateGroupInput validates the fields of a create group request. Names
// are not required to be unique, only present and reasonably sized.
func ValidateGroupInput(in GroupInput) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}

	return errs
}
