package proj4rs

/*
#cgo LDFLAGS: -lproj4rs
#include <stdlib.h>
#include "proj4rs.h"
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

// A Proj owns a native projection definition. It is immutable once
// constructed; its metadata accessors never fail on a live handle.
type Proj struct {
	pr     *C.proj4rs_t
	opened bool
}

// lastError reads the engine's thread-local error channel. The caller
// must still be on the OS thread that ran the failing native call.
func lastError() string {
	return C.GoString(C.proj4rs_last_error())
}

// NewProj creates a projection from a definition string. The definition
// may be a proj-string ("+proj=merc +lon_0=3"), a known identifier such
// as "WGS84", or an EPSG code.
func NewProj(definition string) (*Proj, error) {
	cs := C.CString(definition)
	defer C.free(unsafe.Pointer(cs))

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	pr := C.proj4rs_proj_new(cs)
	if pr == nil {
		return nil, fmt.Errorf("%w %q: %s", ErrInvalidDefinition, definition, lastError())
	}

	p := &Proj{pr: pr, opened: true}
	runtime.SetFinalizer(p, (*Proj).Close)
	return p, nil
}

// Close releases the native projection. It is safe to call more than
// once; only the first call releases the resource.
func (p *Proj) Close() {
	if p.opened {
		C.proj4rs_proj_delete(p.pr)
		p.pr = nil
		p.opened = false
		runtime.SetFinalizer(p, nil)
	}
}

func (p *Proj) handle() *C.proj4rs_t {
	if !p.opened {
		panic("proj4rs: use of closed projection")
	}
	return p.pr
}

// ProjName returns the short name of the projection, e.g. "longlat" or
// "laea".
func (p *Proj) ProjName() string {
	s := C.GoString(C.proj4rs_proj_projname(p.handle()))
	runtime.KeepAlive(p)
	return s
}

// IsLatlong reports whether the projection is geographic.
func (p *Proj) IsLatlong() bool {
	b := bool(C.proj4rs_proj_is_latlong(p.handle()))
	runtime.KeepAlive(p)
	return b
}

// IsGeocent reports whether the projection is geocentric.
func (p *Proj) IsGeocent() bool {
	b := bool(C.proj4rs_proj_is_geocent(p.handle()))
	runtime.KeepAlive(p)
	return b
}

// Axis returns the axis directions as three bytes: x 'e'/'w', y 'n'/'s',
// z 'u'/'d'.
func (p *Proj) Axis() [3]byte {
	var axis [3]byte
	raw := C.proj4rs_proj_axis(p.handle())
	copy(axis[:], C.GoBytes(unsafe.Pointer(raw), 3))
	runtime.KeepAlive(p)
	return axis
}

// IsNormalizedAxis reports whether the axis order is east, north, up.
func (p *Proj) IsNormalizedAxis() bool {
	b := bool(C.proj4rs_proj_is_normalized_axis(p.handle()))
	runtime.KeepAlive(p)
	return b
}

// ToMeter returns the factor converting the projection's linear unit to
// meters.
func (p *Proj) ToMeter() float64 {
	f := float64(C.proj4rs_proj_to_meter(p.handle()))
	runtime.KeepAlive(p)
	return f
}

// Units returns the projection's unit name, e.g. "degrees" or "m".
func (p *Proj) Units() string {
	s := C.GoString(C.proj4rs_proj_units(p.handle()))
	runtime.KeepAlive(p)
	return s
}
