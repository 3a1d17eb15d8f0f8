package internal

// Result is the outcome of a call that logs its own failures instead of
// returning them. Callers only learn whether data arrived.
type Result[T any] struct {
	value T
	ok    bool
}

func Success[T any](v T) Result[T] { return Result[T]{value: v, ok: true} }

func Failure[T any]() Result[T] { return Result[T]{} }

func (r Result[T]) Get() (T, bool) { return r.value, r.ok }
