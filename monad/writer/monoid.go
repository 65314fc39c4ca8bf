package writer

// Log is a list output; Combine appends.
type Log[T any] []T

func (Log[T]) Empty() Log[T] { return Log[T]{} }

func (l Log[T]) Combine(other Log[T]) Log[T] {
	out := make(Log[T], 0, len(l)+len(other))
	out = append(out, l...)
	return append(out, other...)
}

// Text is a string output; Combine concatenates.
type Text string

func (Text) Empty() Text { return "" }

func (t Text) Combine(other Text) Text { return t + other }

// Number constrains the element types Sum accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum is a numeric output; Combine adds.
type Sum[N Number] struct{ Value N }

func (Sum[N]) Empty() Sum[N] { return Sum[N]{} }

func (s Sum[N]) Combine(other Sum[N]) Sum[N] { return Sum[N]{Value: s.Value + other.Value} }
