package builder

// Builder applies setters to a freshly allocated T, stopping
// at the first failing MaybeUse.
type Builder[T any] struct {
	Obj *T
	Err error
}

func New[T any]() *Builder[T] {
	return &Builder[T]{
		Obj: new(T),
	}
}

// From continues building an existing value.
func From[T any](obj *T) *Builder[T] {
	return &Builder[T]{Obj: obj}
}

func (b *Builder[T]) Use(setter func(b *T)) *Builder[T] {
	if b.Err == nil {
		setter(b.Obj)
	}
	return b
}

func (b *Builder[T]) UseAll(setters ...func(b *T)) *Builder[T] {
	for _, s := range setters {
		b.Use(s)
	}
	return b
}

func (b *Builder[T]) MaybeUse(setter func(b *T) error) *Builder[T] {
	if b.Err == nil {
		b.Err = setter(b.Obj)
	}
	return b
}

func (b *Builder[T]) Get() (*T, error) {
	return b.Obj, b.Err
}
