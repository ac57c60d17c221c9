package consteither

import (
	"io"
	"reflect"
)

// Never is a zero-size placeholder for a branch that never carries data,
// e.g. Right[Never, uint64] for an either that only ever holds its right
// side. Go cannot express an uninhabited type, so Never is constructible,
// but it holds no information and costs no storage.
type Never struct{}

func closePayload[T any](value T) error {
	c, ok := any(value).(io.Closer)
	if !ok {
		return nil
	}
	// a taken slot leaves a typed nil behind; forwarding to it would panic
	switch rv := reflect.ValueOf(c); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		if rv.IsNil() {
			return nil
		}
	}
	return c.Close()
}
