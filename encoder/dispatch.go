package encoder

import (
	"fmt"

	"github.com/serealgo/sereal/errs"
	"github.com/serealgo/sereal/value"
	"github.com/serealgo/sereal/varint"
	"github.com/serealgo/sereal/wire"
)

// encodeValue is the dispatcher: classify, check/record identity, route
// to the appropriate emitter.
func (e *Encoder) encodeValue(v any) error {
	if err := e.enterRecursion(); err != nil {
		return err
	}
	defer e.leaveRecursion()

	kind := e.model.Classify(v)
	if kind == value.KindUnsupported {
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedType, e.model.TypeName(v))
	}

	var (
		priorOffset int
		found       bool
		id          uintptr
		hasIdentity bool
	)
	if kind != value.KindBool {
		id, hasIdentity = e.model.Identity(v)
		if hasIdentity {
			priorOffset, found = e.seen.Lookup(id)
			if !found {
				e.seen.Insert(id, e.buf.Len())
			}
		}
	}

	var prior *int
	if found {
		prior = &priorOffset
	}

	switch kind {
	case value.KindBool:
		return e.emitBool(e.model.Bool(v))
	case value.KindInt:
		return e.emitInt(e.model.Int(v), prior)
	case value.KindFloat:
		return e.emitFloat(e.model.Float(v), prior)
	case value.KindBytes:
		return e.emitBytes(e.model.Bytes(v), prior)
	case value.KindText:
		text, err := e.model.Text(v)
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrHostError, err)
		}
		return e.emitText(text, prior)
	case value.KindList:
		return e.emitList(v, prior)
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedType, e.model.TypeName(v))
	}
}

// writeTagByte appends a single tag byte and returns the offset it was
// written at.
func (e *Encoder) writeTagByte(tag byte) int {
	offset := e.buf.Len()
	e.buf.Grow(1)
	e.buf.MustWriteByte(tag)
	return offset
}

// writeCopy emits a COPY tag pointing at offset.
func (e *Encoder) writeCopy(offset int) {
	e.buf.Grow(1 + varint.MaxVarintLen64)
	e.buf.MustWriteByte(wire.Copy)
	e.buf.MustWriteUvarint(uint64(offset))
}

func (e *Encoder) emitBool(b bool) error {
	if b {
		e.writeTagByte(wire.True)
	} else {
		e.writeTagByte(wire.False)
	}
	return nil
}

// copyProfitable reports whether a COPY is strictly shorter than the
// inline encoding, comparing the conservative EstimateLen of the offset
// against directLen, the inline payload length without its tag byte
// (both encodings start with one tag byte) (spec §4.4).
func copyProfitable(offset, directLen int) bool {
	return varint.EstimateLen(uint64(offset)) < directLen
}

func (e *Encoder) emitInt(n int64, prior *int) error {
	if prior != nil {
		var directLen int
		if n >= 0 {
			directLen = varint.EstimateLen(uint64(n))
		} else {
			directLen = varint.EstimateLen(varint.Zigzag(n))
		}
		if copyProfitable(*prior, directLen) {
			e.writeCopy(*prior)
			return nil
		}
	}

	switch {
	case n >= 0 && n <= 15:
		e.writeTagByte(wire.PosLow | byte(n))
	case n >= -16 && n <= -1:
		e.writeTagByte(wire.NegLow | byte(n+wire.NegLowBias))
	case n >= 16:
		e.buf.Grow(1 + varint.MaxVarintLen64)
		e.buf.MustWriteByte(wire.Varint)
		e.buf.MustWriteUvarint(uint64(n))
	default: // n <= -17
		e.buf.Grow(1 + varint.MaxVarintLen64)
		e.buf.MustWriteByte(wire.Zigzag)
		e.buf.MustWriteUvarint(varint.Zigzag(n))
	}
	return nil
}

func (e *Encoder) emitFloat(f float64, prior *int) error {
	if prior != nil && copyProfitable(*prior, 8) {
		e.writeCopy(*prior)
		return nil
	}

	e.buf.Grow(1 + 8)
	e.buf.MustWriteByte(wire.Double)
	e.buf.MustWriteFloat64LE(f)
	return nil
}

func (e *Encoder) emitBytes(b []byte, prior *int) error {
	if prior != nil && copyProfitable(*prior, len(b)) {
		e.writeCopy(*prior)
		return nil
	}

	if len(b) <= wire.MaskShortBinaryLen {
		e.buf.Grow(1 + len(b))
		e.buf.MustWriteByte(wire.ShortBinaryLow | byte(len(b)))
		e.buf.MustWrite(b)
		return nil
	}

	e.buf.Grow(1 + varint.MaxVarintLen64 + len(b))
	e.buf.MustWriteByte(wire.Binary)
	e.buf.MustWriteUvarint(uint64(len(b)))
	e.buf.MustWrite(b)
	return nil
}

func (e *Encoder) emitText(text []byte, prior *int) error {
	if prior != nil && copyProfitable(*prior, len(text)) {
		e.writeCopy(*prior)
		return nil
	}

	e.buf.Grow(1 + varint.MaxVarintLen64 + len(text))
	e.buf.MustWriteByte(wire.StrUTF8)
	e.buf.MustWriteUvarint(uint64(len(text)))
	e.buf.MustWrite(text)
	return nil
}

func (e *Encoder) emitList(v any, prior *int) error {
	length := e.model.ListLen(v)

	if prior != nil {
		flagOffset := *prior
		if length > wire.MaskArrayRefCount {
			flagOffset++
		}
		e.buf.OrByteAt(flagOffset, wire.FlagBit)

		e.buf.Grow(1 + varint.MaxVarintLen64)
		e.buf.MustWriteByte(wire.RefP)
		e.buf.MustWriteUvarint(uint64(flagOffset))
		return nil
	}

	if length <= wire.MaskArrayRefCount {
		e.writeTagByte(wire.ArrayRefLow | byte(length))
	} else {
		e.writeTagByte(wire.RefN)
		e.buf.Grow(1 + varint.MaxVarintLen64)
		e.buf.MustWriteByte(wire.Array)
		e.buf.MustWriteUvarint(uint64(length))
	}

	// A list contributes 2 to recursion depth: once in the dispatcher,
	// once here, mirroring the source encoder's behavior.
	if err := e.enterRecursion(); err != nil {
		return err
	}
	defer e.leaveRecursion()

	for i := 0; i < length; i++ {
		if err := e.encodeValue(e.model.ListElem(v, i)); err != nil {
			return err
		}
	}
	return nil
}
