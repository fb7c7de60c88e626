//go:build linux

/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 *
 * This file provides a thin wrapper around the dynamic loader (dlopen,
 * dlsym, dlclose). It exists so that the NVML bindings can be built
 * without a link-time dependency on the driver libraries: the shared
 * library is located and opened at runtime, and individual entry points
 * are resolved by name.
 */

package dl

/*
#cgo LDFLAGS: -ldl

#include <stdlib.h>
#include <dlfcn.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Loader flags, mirroring the dlfcn constants.
const (
	Lazy   = C.RTLD_LAZY
	Now    = C.RTLD_NOW
	Global = C.RTLD_GLOBAL
	Local  = C.RTLD_LOCAL
)

// Lib represents an open handle to a dynamically loaded shared library.
type Lib struct {
	handle unsafe.Pointer
	name   string
}

// Open loads the named shared library with the given flags.
func Open(name string, flags int) (*Lib, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	handle := C.dlopen(cName, C.int(flags))
	if handle == nil {
		return nil, fmt.Errorf("dl: unable to open %q: %s", name, lastError())
	}

	return &Lib{handle: handle, name: name}, nil
}

// Name returns the name the library was opened with.
func (l *Lib) Name() string {
	return l.name
}

// Lookup resolves the named symbol in the library. A symbol resolving to
// NULL without a loader error is reported as found.
func (l *Lib) Lookup(symbol string) (unsafe.Pointer, error) {
	if l.handle == nil {
		return nil, fmt.Errorf("dl: %q is not open", l.name)
	}

	cSymbol := C.CString(symbol)
	defer C.free(unsafe.Pointer(cSymbol))

	// Clear any stale error state before the lookup; dlsym can legally
	// return NULL for a symbol whose value is NULL.
	C.dlerror()
	ptr := C.dlsym(l.handle, cSymbol)
	if err := C.dlerror(); err != nil {
		return nil, fmt.Errorf("dl: symbol %q not found in %q: %s", symbol, l.name, C.GoString(err))
	}

	return ptr, nil
}

// Close releases the library handle. The handle must not be used afterwards.
func (l *Lib) Close() error {
	if l.handle == nil {
		return nil
	}

	if C.dlclose(l.handle) != 0 {
		return fmt.Errorf("dl: unable to close %q: %s", l.name, lastError())
	}
	l.handle = nil

	return nil
}

func lastError() string {
	err := C.dlerror()
	if err == nil {
		return "unknown error"
	}
	return C.GoString(err)
}
