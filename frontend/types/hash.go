package types

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// canonicalNumBits makes 0 and -0 (and every NaN) hash alike, matching LitValue.Equal
func canonicalNumBits(n float64) uint64 {
	switch {
	case n == 0:
		return 0
	case math.IsNaN(n):
		return math.Float64bits(math.NaN())
	default:
		return math.Float64bits(n)
	}
}

func (t *Literal) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Literal"))
	arr := []byte{byte(t.Value.Kind)}
	switch t.Value.Kind {
	case LitString, LitBigInt:
		arr = append(arr, t.Value.Str...)
	case LitNumber:
		arr = binary.LittleEndian.AppendUint64(arr, canonicalNumBits(t.Value.Num))
	case LitBoolean:
		if t.Value.Bool {
			arr = append(arr, 1)
		}
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (t *Union) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Union"))
	arr := make([]byte, 0)
	for i := 0; i < t.Len(); i++ {
		arr = binary.LittleEndian.AppendUint64(arr, t.At(i).Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (t *Keyword) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Keyword"))
	_, _ = h.Write([]byte{byte(t.Kind)})
	return h.Sum64()
}

func (t *Ref) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Ref"))
	_, _ = h.Write([]byte(t.Name))
	arr := make([]byte, 0)
	for _, arg := range t.Args {
		arr = binary.LittleEndian.AppendUint64(arr, arg.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (t *Array) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Array"))
	_, _ = h.Write(binary.LittleEndian.AppendUint64(nil, t.Elem.Hash()))
	return h.Sum64()
}

func (t *Tuple) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Tuple"))
	arr := make([]byte, 0)
	for _, elem := range t.Elems {
		arr = binary.LittleEndian.AppendUint64(arr, elem.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (t *Function) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Function"))
	arr := make([]byte, 0)
	for _, param := range t.Params {
		arr = binary.LittleEndian.AppendUint64(arr, param.Type.Hash())
		if param.Optional {
			arr = append(arr, '?')
		}
	}
	arr = binary.LittleEndian.AppendUint64(arr, t.Result.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (t *Object) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Object"))
	arr := make([]byte, 0)
	for _, prop := range t.Props {
		arr = append(arr, prop.Name...)
		if prop.Optional {
			arr = append(arr, '?')
		}
		arr = binary.LittleEndian.AppendUint64(arr, prop.Type.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}
