/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 *
 * Redistribution and use in source and binary forms, with or without
 * modification, are permitted provided that the following conditions
 * are met:
 *  * Redistributions of source code must retain the above copyright
 *    notice, this list of conditions and the following disclaimer.
 *  * Redistributions in binary form must reproduce the above copyright
 *    notice, this list of conditions and the following disclaimer in the
 *    documentation and/or other materials provided with the distribution.
 *  * Neither the name of NVIDIA CORPORATION nor the names of its
 *    contributors may be used to endorse or promote products derived
 *    from this software without specific prior written permission.
 *
 * THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS ``AS IS'' AND ANY
 * EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
 * IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR
 * PURPOSE ARE DISCLAIMED.  IN NO EVENT SHALL THE COPYRIGHT OWNER OR
 * CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL,
 * EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
 * PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR
 * PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY
 * OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
 * (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
 * OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
 */

package nvml

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Masterminds/semver/v3"
)

// DefaultLibraryPath is the soname the driver installs on every
// supported distribution.
const DefaultLibraryPath = "libnvidia-ml.so.1"

// Library is a loaded instance of the management library. It owns the
// native symbol table and the per-operation resolution cache; every
// Device and instance handle is derived from exactly one Library and
// becomes invalid when that Library is shut down.
//
// Thread safety of individual operations is governed by the native
// library, which documents its entry points as thread-safe. The wrapper
// adds no serialization of its own beyond the write-once resolution
// cache and handle lifecycle flags.
type Library struct {
	native        nativeLib
	legacyEnabled bool

	resolveOnce [opCount]sync.Once
	resolved    [opCount]resolvedOp

	closed atomic.Bool
}

// Option configures a Library before loading.
type Option func(*options)

type options struct {
	path string
}

// WithLibraryPath overrides the path or soname passed to the dynamic
// loader.
func WithLibraryPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// New loads the management library and prepares the symbol table. It
// does not initialize the driver attachment; call Init on the returned
// Library before issuing queries.
func New(opts ...Option) (*Library, error) {
	o := options{path: DefaultLibraryPath}
	for _, opt := range opts {
		opt(&o)
	}

	native, err := openNative(o.path)
	if err != nil {
		return nil, &Error{Op: fmt.Sprintf("load %q", o.path), Kind: KindLibraryLoadFailure, Code: ErrorLibraryNotFound}
	}

	return newLibrary(native, legacyFunctionsEnabled), nil
}

// newLibrary wires a Library over an arbitrary native implementation.
// Tests use it to substitute fakes and to exercise both legacy-gate
// settings in one build.
func newLibrary(native nativeLib, legacyEnabled bool) *Library {
	return &Library{native: native, legacyEnabled: legacyEnabled}
}

// checkOpen fails fast once the Library has been shut down, before any
// native state is touched.
func (l *Library) checkOpen(op string) error {
	if l.closed.Load() {
		return errClosed(op)
	}
	return nil
}

// Init attaches to the driver. It must succeed before any query or
// mutating operation; a redundant Init surfaces as an
// already-initialized error the caller may choose to ignore via
// IsAlreadyInitialized.
func (l *Library) Init() error {
	const op = "Init"
	if err := l.checkOpen(op); err != nil {
		return err
	}
	r := l.resolve(opInit)
	if r.err != nil {
		return r.err
	}

	var ret Return
	switch r.suffix {
	case "_v2":
		ret = l.native.nvmlInit_v2()
	default:
		ret = l.native.nvmlInit()
	}
	return errorOf(op, ret)
}

// InitWithFlags attaches to the driver with initialization flags (e.g.
// NVML_INIT_FLAG_NO_GPUS to tolerate a GPU-less host).
func (l *Library) InitWithFlags(flags uint32) error {
	const op = "InitWithFlags"
	if err := l.checkOpen(op); err != nil {
		return err
	}
	r := l.resolve(opInitWithFlags)
	if r.err != nil {
		return r.err
	}
	return errorOf(op, l.native.nvmlInitWithFlags(flags))
}

// Shutdown detaches from the driver and releases the library handle.
// All handles derived from this Library are invalid afterwards; any
// operation against them fails deterministically instead of reaching
// freed native state. Shutdown is idempotent.
func (l *Library) Shutdown() error {
	const op = "Shutdown"
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}

	r := l.resolve(opShutdown)
	if r.err != nil {
		// The library loaded but never exposed a shutdown entry point;
		// still release the loader handle.
		_ = l.native.close()
		return r.err
	}

	ret := l.native.nvmlShutdown()
	if err := l.native.close(); err != nil && ret == Success {
		return &Error{Op: op, Kind: KindUnknown}
	}
	return errorOf(op, ret)
}

// DriverVersion returns the installed driver version string.
func (l *Library) DriverVersion() (string, error) {
	const op = "SystemGetDriverVersion"
	if err := l.checkOpen(op); err != nil {
		return "", err
	}
	r := l.resolve(opSystemGetDriverVersion)
	if r.err != nil {
		return "", r.err
	}
	buf := make([]byte, systemDriverVersionBufferSize)
	if err := errorOf(op, l.native.nvmlSystemGetDriverVersion(&buf[0], uint32(len(buf)))); err != nil {
		return "", err
	}
	return cstr(buf), nil
}

// NVMLVersion returns the version string of the management library
// itself.
func (l *Library) NVMLVersion() (string, error) {
	const op = "SystemGetNVMLVersion"
	if err := l.checkOpen(op); err != nil {
		return "", err
	}
	r := l.resolve(opSystemGetNVMLVersion)
	if r.err != nil {
		return "", r.err
	}
	buf := make([]byte, systemNVMLVersionBufferSize)
	if err := errorOf(op, l.native.nvmlSystemGetNVMLVersion(&buf[0], uint32(len(buf)))); err != nil {
		return "", err
	}
	return cstr(buf), nil
}

// CudaDriverVersion returns the CUDA driver version as the native
// encoded integer (major*1000 + minor*10).
func (l *Library) CudaDriverVersion() (int, error) {
	const op = "SystemGetCudaDriverVersion"
	if err := l.checkOpen(op); err != nil {
		return 0, err
	}
	r := l.resolve(opSystemGetCudaDriverVersion)
	if r.err != nil {
		return 0, r.err
	}

	var version int32
	var ret Return
	switch r.suffix {
	case "_v2":
		ret = l.native.nvmlSystemGetCudaDriverVersion_v2(&version)
	default:
		ret = l.native.nvmlSystemGetCudaDriverVersion(&version)
	}
	if err := errorOf(op, ret); err != nil {
		return 0, err
	}
	return int(version), nil
}

// VerifyDriverVersion checks the running driver against a semver
// constraint, e.g. ">= 525.60". Callers use it to gate operation
// families that need a minimum driver.
func (l *Library) VerifyDriverVersion(constraint string) error {
	const op = "VerifyDriverVersion"

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errInvalidArgument(op)
	}

	raw, err := l.DriverVersion()
	if err != nil {
		return err
	}

	v, err := semver.NewVersion(normalizeDriverVersion(raw))
	if err != nil {
		return &Error{Op: op, Kind: KindUnknown}
	}

	if !c.Check(v) {
		return fmt.Errorf("driver version %s does not satisfy %q: %w", raw, constraint, errUnsupported(op))
	}
	return nil
}

// normalizeDriverVersion rewrites a driver version like "535.183.06"
// into a form strict semver accepts (no zero-padded components, always
// three components).
func normalizeDriverVersion(raw string) string {
	parts := strings.Split(strings.TrimSpace(raw), ".")
	for i, p := range parts {
		trimmed := strings.TrimLeft(p, "0")
		if trimmed == "" {
			trimmed = "0"
		}
		parts[i] = trimmed
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	return strings.Join(parts[:3], ".")
}
