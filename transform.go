package proj4rs

/*
#include "proj4rs.h"
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"

	"gonum.org/v1/gonum/mat"
)

// A Transform reprojects coordinates from a source to a destination
// projection. The zero value is not usable; build one with NewTransform
// or NewTransformDef.
//
// The native transform primitive gives no thread-safety guarantee for
// concurrent calls sharing a projection; metadata reads are safe, but
// concurrent Transform calls on the same Proj pair need external
// synchronization.
type Transform struct {
	src *Proj
	dst *Proj
}

// NewTransform builds a transform from two existing projections. The
// projections stay owned by the caller.
func NewTransform(src, dst *Proj) *Transform {
	return &Transform{src: src, dst: dst}
}

// NewTransformDef builds a transform from two definition strings.
func NewTransformDef(srcDefn, dstDefn string) (*Transform, error) {
	src, err := NewProj(srcDefn)
	if err != nil {
		return nil, err
	}
	dst, err := NewProj(dstDefn)
	if err != nil {
		src.Close()
		return nil, err
	}
	return NewTransform(src, dst), nil
}

// Source returns the source projection.
func (t *Transform) Source() *Proj { return t.src }

// Destination returns the destination projection.
func (t *Transform) Destination() *Proj { return t.dst }

type transformOptions struct {
	convert bool
	inplace bool
}

// A TransformOption adjusts how coordinates are handed to the engine.
type TransformOption func(*transformOptions)

// Convert controls whether geographic coordinates are treated as
// degrees and converted to and from the engine's radian representation.
// The default is true.
func Convert(convert bool) TransformOption {
	return func(o *transformOptions) { o.convert = convert }
}

// InPlace requests that writable float64 buffers be transformed in the
// caller's own storage instead of a fresh copy. Inputs that are not
// contiguous float64 data fall back to copying. The default is false.
func InPlace(inplace bool) TransformOption {
	return func(o *transformOptions) { o.inplace = inplace }
}

// Transform reprojects the supplied coordinates with a single native
// call. x, y and z accept scalars (float64, float32 and int kinds),
// numeric slices, *mat.VecDense / mat.Vector views, or - as a single
// x argument - an N x 2 or N x 3 mat.Matrix of interleaved coordinates.
//
// The result shape mirrors the input: scalars come back as float64,
// sequences and float64 slices as []float64, vectors as mat.Vector,
// and a packed matrix as two or three per-axis mat.Vector columns.
// zOut is nil when no z axis was supplied. With InPlace(true) and
// aliasable input, the returned values are the caller's own storage.
func (t *Transform) Transform(x, y, z any, opts ...TransformOption) (xOut, yOut, zOut any, err error) {
	o := transformOptions{convert: true}
	for _, opt := range opts {
		opt(&o)
	}

	cb, err := normalize(x, y, z, o.inplace)
	if err != nil {
		return nil, nil, nil, err
	}

	xp := bufPtr(&cb.axes[0].buf)
	yp := bufPtr(&cb.axes[1].buf)
	var zp *C.double
	if cb.nAxes == 3 {
		zp = bufPtr(&cb.axes[2].buf)
	}

	// The engine reports failures through a thread-local channel; the
	// call and the error fetch must share an OS thread.
	runtime.LockOSThread()
	rv := C.proj4rs_transform(
		t.src.handle(),
		t.dst.handle(),
		xp, yp, zp,
		C.ssize_t(cb.n),
		C.ssize_t(cb.stride),
		C.bool(o.convert),
	)
	var diag string
	if rv != 1 {
		diag = lastError()
	}
	runtime.UnlockOSThread()
	runtime.KeepAlive(t.src)
	runtime.KeepAlive(t.dst)

	if rv != 1 {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrTransform, diag)
	}

	xOut, yOut, zOut = cb.results()
	return xOut, yOut, zOut, nil
}

func bufPtr(b *coordBuf) *C.double {
	return (*C.double)(unsafe.Pointer(&b.data[b.off]))
}

// results maps the post-transform canonical buffers back to the
// caller's shape. Aliased buffers hand back the original value so the
// caller observes its own storage mutated.
func (cb *callBuffers) results() (any, any, any) {
	var out [3]any
	for i := 0; i < cb.nAxes; i++ {
		ax := &cb.axes[i]
		switch cb.kind {
		case kindScalar:
			out[i] = ax.buf.data[0]
		case kindPacked:
			if ax.buf.owns {
				out[i] = mat.NewVecDense(cb.n, ax.buf.data)
			} else {
				out[i] = ax.orig.(*mat.Dense).ColView(i)
			}
		default:
			if !ax.buf.owns {
				out[i] = ax.orig
			} else if _, ok := ax.orig.(mat.Vector); ok {
				out[i] = mat.NewVecDense(cb.n, ax.buf.data)
			} else {
				out[i] = ax.buf.data
			}
		}
	}
	return out[0], out[1], out[2]
}
