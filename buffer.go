package proj4rs

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const sizeofDouble = 8

// coordKind tags the classification of a transform call's inputs.
// Classification happens once, before any native call, and the output
// shape mirrors it.
type coordKind int

const (
	kindScalar coordKind = iota
	kindSequence
	kindBuffer
	kindPacked
)

// coordBuf is the canonical form handed to the native call: float64
// values addressed from data[off] with strideBytes between consecutive
// values. owns is false when the buffer aliases caller memory that the
// native call mutates in place.
type coordBuf struct {
	data        []float64
	off         int
	n           int
	strideBytes int
	owns        bool
}

// axis pairs a canonical buffer with the caller's original value, kept
// only until the call returns so aliased results can be handed back
// verbatim.
type axis struct {
	buf  coordBuf
	orig any
}

// callBuffers is the normalized form of one transform invocation. All
// axes share length and stride; the native ABI takes a single stride.
type callBuffers struct {
	kind   coordKind
	n      int
	stride int
	axes   [3]axis
	nAxes  int
}

func ownedBuf(vals []float64) coordBuf {
	return coordBuf{data: vals, n: len(vals), strideBytes: sizeofDouble, owns: true}
}

func aliasBuf(vals []float64) coordBuf {
	return coordBuf{data: vals, n: len(vals), strideBytes: sizeofDouble, owns: false}
}

func scalarValue(v any) (float64, bool) {
	switch s := v.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	case int32:
		return float64(s), true
	case int64:
		return float64(s), true
	}
	return 0, false
}

// sequenceValues copies list-like numeric input into a fresh float64
// slice. Sequences are never aliased for write-back.
func sequenceValues(v any) ([]float64, bool) {
	switch s := v.(type) {
	case []float32:
		out := make([]float64, len(s))
		for i, f := range s {
			out[i] = float64(f)
		}
		return out, true
	case []int:
		out := make([]float64, len(s))
		for i, f := range s {
			out[i] = float64(f)
		}
		return out, true
	case []int32:
		out := make([]float64, len(s))
		for i, f := range s {
			out[i] = float64(f)
		}
		return out, true
	case []int64:
		out := make([]float64, len(s))
		for i, f := range s {
			out[i] = float64(f)
		}
		return out, true
	}
	return nil, false
}

// vectorBuf normalizes a 1-D buffer-like axis. A []float64 slice and a
// contiguous *mat.VecDense may be aliased when inplace is requested;
// strided or abstract vectors silently fall back to copying.
func vectorBuf(v any, inplace bool) (coordBuf, bool) {
	switch b := v.(type) {
	case []float64:
		if inplace {
			return aliasBuf(b), true
		}
		out := make([]float64, len(b))
		copy(out, b)
		return ownedBuf(out), true
	case *mat.VecDense:
		raw := b.RawVector()
		if inplace && raw.Inc == 1 {
			return aliasBuf(raw.Data[:raw.N]), true
		}
		out := make([]float64, raw.N)
		for i := range out {
			out[i] = b.AtVec(i)
		}
		return ownedBuf(out), true
	case mat.Vector:
		out := make([]float64, b.Len())
		for i := range out {
			out[i] = b.AtVec(i)
		}
		return ownedBuf(out), true
	}
	return coordBuf{}, false
}

func isVectorLike(v any) bool {
	if _, ok := v.(mat.Vector); ok {
		return true
	}
	switch v.(type) {
	case []float64, []float32, []int, []int32, []int64:
		return true
	}
	return false
}

// normalizePacked de-interleaves a single N x dim matrix into per-axis
// strided views. The caller's storage is aliased only when inplace was
// requested and the matrix is a contiguous *mat.Dense; any other layout
// is copied into fresh compact buffers.
func normalizePacked(m mat.Matrix, inplace bool) (*callBuffers, error) {
	rows, dim := m.Dims()
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("%w: expecting geometry dimensions of 2 or 3, found %d", ErrShape, dim)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: empty coordinate buffer", ErrMissingData)
	}

	cb := &callBuffers{kind: kindPacked, n: rows, nAxes: dim}

	den, _ := m.(*mat.Dense)
	if inplace && den != nil && den.RawMatrix().Stride == dim {
		raw := den.RawMatrix()
		cb.stride = dim * sizeofDouble
		for j := 0; j < dim; j++ {
			cb.axes[j] = axis{
				buf: coordBuf{
					data:        raw.Data,
					off:         j,
					n:           rows,
					strideBytes: dim * sizeofDouble,
				},
				orig: den,
			}
		}
		return cb, nil
	}

	cb.stride = sizeofDouble
	for j := 0; j < dim; j++ {
		vals := make([]float64, rows)
		for i := range vals {
			vals[i] = m.At(i, j)
		}
		cb.axes[j] = axis{buf: ownedBuf(vals), orig: m}
	}
	return cb, nil
}

// normalize classifies the supplied axes and produces the canonical
// buffers for one native call. First match wins: a single 2-D argument
// is a packed buffer, then sequences, then 1-D buffers, then scalars.
func normalize(x, y, z any, inplace bool) (*callBuffers, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: x coordinate is required", ErrMissingData)
	}

	if y == nil {
		if z != nil {
			return nil, fmt.Errorf("%w: y coordinate is required", ErrMissingData)
		}
		switch m := x.(type) {
		case mat.Vector:
			return nil, fmt.Errorf("%w: expecting two-dimensional buffer", ErrShape)
		case mat.Matrix:
			return normalizePacked(m, inplace)
		}
		if isVectorLike(x) {
			return nil, fmt.Errorf("%w: expecting two-dimensional buffer", ErrShape)
		}
		if _, ok := scalarValue(x); ok {
			return nil, fmt.Errorf("%w: y coordinate is required", ErrMissingData)
		}
		return nil, fmt.Errorf("%w: %T", ErrInvalidBufferType, x)
	}

	args := []any{x, y}
	if z != nil {
		args = append(args, z)
	}

	scalars := 0
	for _, a := range args {
		if _, ok := a.(mat.Vector); ok {
			continue
		}
		if _, ok := a.(mat.Matrix); ok {
			return nil, fmt.Errorf("%w: expecting one-dimensional buffer", ErrShape)
		}
		if _, ok := scalarValue(a); ok {
			scalars++
		}
	}

	if scalars == len(args) {
		cb := &callBuffers{kind: kindScalar, n: 1, stride: sizeofDouble, nAxes: len(args)}
		for i, a := range args {
			v, _ := scalarValue(a)
			cb.axes[i] = axis{buf: ownedBuf([]float64{v}), orig: a}
		}
		return cb, nil
	}
	if scalars > 0 {
		return nil, fmt.Errorf("%w: mixed scalar and array coordinates", ErrShape)
	}

	cb := &callBuffers{stride: sizeofDouble, nAxes: len(args)}
	cb.kind = kindBuffer
	for i, a := range args {
		if vals, ok := sequenceValues(a); ok {
			if i == 0 {
				cb.kind = kindSequence
			}
			cb.axes[i] = axis{buf: ownedBuf(vals), orig: a}
			continue
		}
		buf, ok := vectorBuf(a, inplace)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrInvalidBufferType, a)
		}
		cb.axes[i] = axis{buf: buf, orig: a}
	}

	cb.n = cb.axes[0].buf.n
	if cb.n == 0 {
		return nil, fmt.Errorf("%w: empty coordinates", ErrMissingData)
	}
	for i := 1; i < cb.nAxes; i++ {
		if cb.axes[i].buf.n != cb.n {
			return nil, ErrLengthMismatch
		}
	}
	return cb, nil
}
