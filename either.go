package consteither

// Left is the configuration of a const either whose live payload is the
// first type. It stores exactly one L and nothing for R; the right-side
// accessors do not exist on it.
type Left[L, R any] struct {
	value L
}

// NewLeft wraps value in the left configuration, taking ownership of it.
func NewLeft[L, R any](value L) Left[L, R] {
	return Left[L, R]{value: value}
}

// IntoInner returns the payload.
func (l Left[L, R]) IntoInner() L {
	return l.value
}

// Get returns a copy of the payload.
func (l Left[L, R]) Get() L {
	return l.value
}

// Ref returns a pointer to the payload slot for in-place reads and writes.
func (l *Left[L, R]) Ref() *L {
	return &l.value
}

// Set replaces the payload.
func (l *Left[L, R]) Set(value L) {
	l.value = value
}

// Take moves the payload out, leaving the zero value behind. The release
// obligation moves with the payload: a later Close sees the zeroed slot and
// does not forward to a nil payload.
func (l *Left[L, R]) Take() L {
	value := l.value
	var zero L
	l.value = zero
	return value
}

// Flip relabels the container: the payload moves across unchanged and is the
// right side of the result. Flipping twice restores the original type.
func (l Left[L, R]) Flip() Right[R, L] {
	return NewRight[R, L](l.value)
}

// Close releases the payload if it implements io.Closer and is a no-op
// otherwise. Call it at most once per container.
func (l Left[L, R]) Close() error {
	return closePayload(l.value)
}

// Right is the configuration of a const either whose live payload is the
// second type. Mirror of Left.
type Right[L, R any] struct {
	value R
}

// NewRight wraps value in the right configuration, taking ownership of it.
func NewRight[L, R any](value R) Right[L, R] {
	return Right[L, R]{value: value}
}

// IntoInner returns the payload.
func (r Right[L, R]) IntoInner() R {
	return r.value
}

// Get returns a copy of the payload.
func (r Right[L, R]) Get() R {
	return r.value
}

// Ref returns a pointer to the payload slot for in-place reads and writes.
func (r *Right[L, R]) Ref() *R {
	return &r.value
}

// Set replaces the payload.
func (r *Right[L, R]) Set(value R) {
	r.value = value
}

// Take moves the payload out, leaving the zero value behind. The release
// obligation moves with the payload: a later Close sees the zeroed slot and
// does not forward to a nil payload.
func (r *Right[L, R]) Take() R {
	value := r.value
	var zero R
	r.value = zero
	return value
}

// Flip relabels the container: the payload moves across unchanged and is the
// left side of the result. Flipping twice restores the original type.
func (r Right[L, R]) Flip() Left[R, L] {
	return NewLeft[R, L](r.value)
}

// Close releases the payload if it implements io.Closer and is a no-op
// otherwise. Call it at most once per container.
func (r Right[L, R]) Close() error {
	return closePayload(r.value)
}

// ConstEither constrains a type parameter to one of the two configurations
// of the either, letting an enclosing generic structure embed the
// configuration as a field chosen per instantiation.
type ConstEither[L, R any] interface {
	Left[L, R] | Right[L, R]
	Close() error
}
