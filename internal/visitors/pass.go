package visitors

// PassThrough returns the value unchanged.
type PassThrough[T any] struct{}

func (PassThrough[T]) Visit(v T) (keep bool, out T, err error) {
	return true, v, nil
}
