package Trees

import "fmt"

// DuplicateValueError is returned by Insert when the value is already in the tree.
type DuplicateValueError struct {
	Value any
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("duplicate value %v: cannot insert the same value twice", e.Value)
}

// Is makes every *DuplicateValueError match ErrDuplicateValue regardless of Value.
func (e *DuplicateValueError) Is(target error) bool {
	_, ok := target.(*DuplicateValueError)
	return ok
}

// ValueNotFoundError is returned by Delete when the value isn't in the tree.
type ValueNotFoundError struct {
	Value any
}

func (e *ValueNotFoundError) Error() string {
	return fmt.Sprintf("value %v not found: cannot delete a non-existent value", e.Value)
}

// Is makes every *ValueNotFoundError match ErrValueNotFound regardless of Value.
func (e *ValueNotFoundError) Is(target error) bool {
	_, ok := target.(*ValueNotFoundError)
	return ok
}

// Sentinels for use with errors.Is.
var (
	ErrDuplicateValue error = &DuplicateValueError{}
	ErrValueNotFound  error = &ValueNotFoundError{}
)
