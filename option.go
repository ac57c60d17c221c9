package consteither

// Some is the present configuration of a const option: it stores exactly one
// T and always has it. The accessors cannot fail and have no ok-return,
// because the type itself guarantees the payload exists.
type Some[T any] struct {
	value T
}

// NewSome wraps value, taking ownership of it.
func NewSome[T any](value T) Some[T] {
	return Some[T]{value: value}
}

// IntoInner returns the payload.
func (s Some[T]) IntoInner() T {
	return s.value
}

// Get returns a copy of the payload.
func (s Some[T]) Get() T {
	return s.value
}

// Ref returns a pointer to the payload slot for in-place reads and writes.
func (s *Some[T]) Ref() *T {
	return &s.value
}

// Set replaces the payload.
func (s *Some[T]) Set(value T) {
	s.value = value
}

// Take moves the payload out, leaving the zero value behind so the container
// holds no reference to it afterwards. The release obligation moves with the
// payload: a later Close sees the zeroed slot and does not forward to a nil
// payload.
func (s *Some[T]) Take() T {
	value := s.value
	var zero T
	s.value = zero
	return value
}

// Close releases the payload if it implements io.Closer and is a no-op
// otherwise. Call it at most once per container.
func (s Some[T]) Close() error {
	return closePayload(s.value)
}

// None is the absent configuration of a const option. It is zero-size and
// exposes no accessors: there is no payload to read, so the methods that
// would read one do not exist.
type None[T any] struct{}

// NewNone produces the absent configuration for T.
func NewNone[T any]() None[T] {
	return None[T]{}
}

// Close has no payload to release.
func (None[T]) Close() error {
	return nil
}

// ConstOption constrains a type parameter to one of the two configurations
// of the option, letting an enclosing generic structure embed the
// configuration as a field chosen per instantiation. Close is the one
// operation shared by both configurations, so generic code can propagate
// release without knowing which one it holds.
type ConstOption[T any] interface {
	Some[T] | None[T]
	Close() error
}
