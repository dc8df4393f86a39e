package value

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// Native is the default Model: a fast exact-type switch over this
// package's own reference-typed wrappers and plain bool, falling back to
// the slow "-er" interface path of interfaces.go for host types that
// don't use the wrappers directly.
type Native struct{}

var _ Model = Native{}

// Classify returns v's Kind, checking exact types first and the -er
// interfaces second, booleans before integers in both passes.
func (Native) Classify(v any) Kind {
	switch v.(type) {
	case bool:
		return KindBool
	case *Int:
		return KindInt
	case *Float:
		return KindFloat
	case *Bytes:
		return KindBytes
	case *Text:
		return KindText
	case *List:
		return KindList
	}

	switch v.(type) {
	case BoolValuer:
		return KindBool
	case IntValuer:
		return KindInt
	case FloatValuer:
		return KindFloat
	case BytesValuer:
		return KindBytes
	case TextValuer:
		return KindText
	case ListValuer:
		return KindList
	}

	return KindUnsupported
}

func (Native) Bool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case BoolValuer:
		return x.SerealBool()
	}
	panic(fmt.Sprintf("value: Bool called on non-bool %T", v))
}

func (Native) Int(v any) int64 {
	switch x := v.(type) {
	case *Int:
		return x.V
	case IntValuer:
		return x.SerealInt()
	}
	panic(fmt.Sprintf("value: Int called on non-int %T", v))
}

func (Native) Float(v any) float64 {
	switch x := v.(type) {
	case *Float:
		return x.V
	case FloatValuer:
		return x.SerealFloat()
	}
	panic(fmt.Sprintf("value: Float called on non-float %T", v))
}

func (Native) Bytes(v any) []byte {
	switch x := v.(type) {
	case *Bytes:
		return x.V
	case BytesValuer:
		return x.SerealBytes()
	}
	panic(fmt.Sprintf("value: Bytes called on non-bytes %T", v))
}

// Text transcodes v's string to canonical UTF-8. For a *Text wrapper the
// Go string is already UTF-8; this still validates it, since the source
// value model's transcoding step may fail and callers must handle that.
func (Native) Text(v any) ([]byte, error) {
	switch x := v.(type) {
	case *Text:
		if !utf8.ValidString(x.V) {
			return nil, fmt.Errorf("value: text is not valid UTF-8")
		}
		return []byte(x.V), nil
	case TextValuer:
		s, err := x.SerealText()
		if err != nil {
			return nil, err
		}
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("value: text is not valid UTF-8")
		}
		return []byte(s), nil
	}
	panic(fmt.Sprintf("value: Text called on non-text %T", v))
}

func (Native) ListLen(v any) int {
	switch x := v.(type) {
	case *List:
		return x.Len()
	case ListValuer:
		return x.SerealLen()
	}
	panic(fmt.Sprintf("value: ListLen called on non-list %T", v))
}

func (Native) ListElem(v any, i int) any {
	switch x := v.(type) {
	case *List:
		return x.Elems[i]
	case ListValuer:
		return x.SerealElem(i)
	}
	panic(fmt.Sprintf("value: ListElem called on non-list %T", v))
}

// Identity returns a pointer-derived key for reference-typed values.
// Booleans have no identity (ok == false); everything else in this
// model is represented by a pointer, whose address is the identity.
func (Native) Identity(v any) (uintptr, bool) {
	switch x := v.(type) {
	case bool:
		return 0, false
	case *Int:
		return reflect.ValueOf(x).Pointer(), true
	case *Float:
		return reflect.ValueOf(x).Pointer(), true
	case *Bytes:
		return reflect.ValueOf(x).Pointer(), true
	case *Text:
		return reflect.ValueOf(x).Pointer(), true
	case *List:
		return reflect.ValueOf(x).Pointer(), true
	case Identifier:
		return x.SerealIdentity(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.Pointer(), true
	}

	return 0, false
}

// TypeName returns v's dynamic Go type name, for "not implemented" errors.
func (Native) TypeName(v any) string {
	return fmt.Sprintf("%T", v)
}
