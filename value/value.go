// Package value decouples the encoder core from any particular host
// type system. The encoder talks only to a Model; this package supplies
// the default Model (Native) plus a small set of reference-typed value
// wrappers that give otherwise value-typed Go primitives the object
// identity the wire protocol's back-reference tracking depends on.
package value

// Kind is the dispatcher's classification result.
type Kind uint8

const (
	KindUnsupported Kind = iota
	KindBool
	KindInt
	KindFloat
	KindBytes
	KindText
	KindList
)

// String names a Kind for error messages.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindList:
		return "list"
	default:
		return "unsupported"
	}
}

// Model is the value-model collaborator the encoder core requires from
// its host: classification, extraction, and identity comparison.
//
// Implementations must check boolean before integer in Classify's slow
// path: booleans are an integer subtype in many host type systems, and a
// pure-integer check first would misclassify them.
type Model interface {
	// Classify returns the exact dynamic kind of v, or KindUnsupported
	// if v does not match any supported kind.
	Classify(v any) Kind

	Bool(v any) bool
	Int(v any) int64
	Float(v any) float64
	Bytes(v any) []byte
	// Text transcodes v to a canonical UTF-8 byte sequence. It may fail,
	// e.g. if the host's native string is not validly transcodable.
	Text(v any) ([]byte, error)
	ListLen(v any) int
	ListElem(v any, i int) any

	// Identity returns a stable address-equivalent key for v, and
	// whether v supports identity tracking at all (booleans do not).
	Identity(v any) (uintptr, bool)

	// TypeName returns a human-readable name for v's dynamic type, used
	// in "not implemented" error messages.
	TypeName(v any) string
}
