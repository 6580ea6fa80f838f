package pipe

import "reflect"

// Map projects every element of parent through fn. The whole list is mapped
// again each time parent changes.
func Map[E, U any](parent Pipe[[]E], fn func(E) U) *Projection[[]E, []U] {
	return Project(parent, func(items []E) []U {
		out := make([]U, len(items))
		for i, item := range items {
			out[i] = fn(item)
		}
		return out
	})
}

// AsSlice views an untyped pipe as a list of E, so collection operators can be
// applied to it. It fails when the current value is not a []E. If the value
// later stops being a []E, reading the returned pipe panics with a
// *NotASliceError.
func AsSlice[E any](o Pipe[any]) (*Projection[any, []E], error) {
	if _, err := toSlice[E](o.Value()); err != nil {
		return nil, err
	}
	return Project(o, func(v any) []E {
		items, err := toSlice[E](v)
		if err != nil {
			panic(err)
		}
		return items
	}), nil
}

func toSlice[E any](v any) ([]E, error) {
	items, ok := v.([]E)
	if !ok {
		return nil, &NotASliceError{
			Want: reflect.TypeOf((*[]E)(nil)).Elem(),
			Got:  reflect.TypeOf(v),
		}
	}
	return items, nil
}
