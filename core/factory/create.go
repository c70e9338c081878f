package factory

import (
	"fmt"
	"reflect"

	"github.com/heron-ml/heron/core/object"
)

// CreateObject creates a fresh instance of the named class and narrows it to
// T. It is the only create path that fails loudly: an unknown name yields an
// error wrapping ErrClassNotFound with a "did you mean" suggestion, and a
// class that does not satisfy T yields an error wrapping ErrTypeMismatch.
func CreateObject[T any](r *Registry, name string, pt object.PrimitiveType) (T, error) {
	var zero T
	obj := r.Create(name, pt)
	if obj == nil {
		if suggestion := r.FindCorrectName(name); suggestion != "" {
			return zero, fmt.Errorf("%w: %s %s does not exist, did you mean %s?",
				ErrClassNotFound, typeName[T](), name, suggestion)
		}
		return zero, fmt.Errorf("%w: %s %s does not exist", ErrClassNotFound, typeName[T](), name)
	}
	narrowed, ok := any(obj).(T)
	if !ok {
		r.observeMismatch(name, pt)
		return zero, fmt.Errorf("%w: %s is not a %s", ErrTypeMismatch, name, typeName[T]())
	}
	return narrowed, nil
}

// typeName names T for error messages, working for interface types where
// %T on a zero value would print nothing useful.
func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
