package internal

// Option represents a functional option pattern for any type T
type Option[T any] interface {
	apply(*T)
}

// OptionFunc wraps a function to implement the Option interface
type OptionFunc[T any] func(*T)

func (f OptionFunc[T]) apply(target *T) {
	if f == nil {
		return
	}
	f(target)
}

// Make wraps an arbitrary effect as an option value. Nothing runs until the
// option is applied.
func Make[T any](effect func(*T)) Option[T] {
	return OptionFunc[T](effect)
}

// ApplyOptions applies all given options to the target, in order. Nil
// options are skipped.
func ApplyOptions[T any](target *T, options ...Option[T]) {
	for _, option := range options {
		if option == nil {
			continue
		}
		option.apply(target)
	}
}
