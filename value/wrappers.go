package value

// Int is a reference-typed signed integer. Its pointer value is its
// identity: two Int instances with equal V are distinct objects unless
// they are literally the same pointer.
type Int struct {
	V int64
}

// NewInt allocates a new, independently-identified Int.
func NewInt(v int64) *Int { return &Int{V: v} }

// Float is a reference-typed double-precision float.
type Float struct {
	V float64
}

// NewFloat allocates a new, independently-identified Float.
func NewFloat(v float64) *Float { return &Float{V: v} }

// Bytes is a reference-typed byte string.
type Bytes struct {
	V []byte
}

// NewBytes allocates a new, independently-identified Bytes.
func NewBytes(v []byte) *Bytes { return &Bytes{V: v} }

// Text is a reference-typed UTF-8 string.
type Text struct {
	V string
}

// NewText allocates a new, independently-identified Text.
func NewText(v string) *Text { return &Text{V: v} }

// List is a reference-typed, ordered, mutable sequence of values.
type List struct {
	Elems []any
}

// NewList allocates a new, independently-identified List.
func NewList(elems ...any) *List { return &List{Elems: elems} }

// Append appends v to the list and returns the list, for chaining.
func (l *List) Append(v any) *List {
	l.Elems = append(l.Elems, v)
	return l
}

// Len returns the number of elements in the list.
func (l *List) Len() int { return len(l.Elems) }
