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
	"errors"
	"fmt"
)

// Kind classifies a failed NVML operation. Every native return code other
// than Success maps to exactly one Kind; codes this package does not
// recognize map to KindUnknown.
type Kind int

const (
	// KindUnsupported indicates the operation (or the requested mode) is
	// not available on the target device, driver, or build.
	KindUnsupported Kind = iota + 1

	// KindInvalidArgument indicates a malformed or out-of-range argument.
	KindInvalidArgument

	// KindInsufficientPermissions indicates the caller lacks the required
	// privileges for the operation.
	KindInsufficientPermissions

	// KindNotFound indicates a query to find an object was unsuccessful.
	KindNotFound

	// KindInsufficientSize indicates an output buffer was too small. For
	// variable-length queries this is handled internally by a single
	// resize-and-retry; it only surfaces when the retry is exhausted.
	KindInsufficientSize

	// KindTimeout indicates a user-provided timeout elapsed.
	KindTimeout

	// KindUninitialized indicates the library has not been initialized,
	// has been shut down, or the driver is not loaded.
	KindUninitialized

	// KindAlreadyInitialized indicates a redundant initialization.
	KindAlreadyInitialized

	// KindNoData indicates the requested data is not available.
	KindNoData

	// KindInvalidHandle indicates a handle was used after the object it
	// names was destroyed. Produced by this package before any native
	// call is made.
	KindInvalidHandle

	// KindLibraryLoadFailure indicates the shared library could not be
	// located or loaded. Fatal to all subsequent operations.
	KindLibraryLoadFailure

	// KindUnknown covers every native code without a dedicated kind.
	KindUnknown
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindInvalidArgument:
		return "invalid argument"
	case KindInsufficientPermissions:
		return "insufficient permissions"
	case KindNotFound:
		return "not found"
	case KindInsufficientSize:
		return "insufficient buffer size"
	case KindTimeout:
		return "timeout"
	case KindUninitialized:
		return "uninitialized"
	case KindAlreadyInitialized:
		return "already initialized"
	case KindNoData:
		return "no data"
	case KindInvalidHandle:
		return "invalid handle"
	case KindLibraryLoadFailure:
		return "library load failure"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error describes a failed NVML operation.
type Error struct {
	Op   string // Logical operation that failed
	Kind Kind   // Failure classification
	Code Return // Raw native return code, if the failure came from a native call
}

func (e *Error) Error() string {
	if e.Code != Success {
		return fmt.Sprintf("nvml: %s failed: %s (code %d)", e.Op, e.Kind, int32(e.Code))
	}
	return fmt.Sprintf("nvml: %s failed: %s", e.Op, e.Kind)
}

// kindOf maps a native return code to its Kind. It is total: codes not
// recognized by this package map to KindUnknown rather than failing.
func kindOf(ret Return) Kind {
	switch ret {
	case ErrorNotSupported, ErrorFunctionNotFound, ErrorDeprecated:
		return KindUnsupported
	case ErrorInvalidArgument, ErrorArgumentVersionMismatch:
		return KindInvalidArgument
	case ErrorNoPermission:
		return KindInsufficientPermissions
	case ErrorNotFound, ErrorGpuNotFound:
		return KindNotFound
	case ErrorInsufficientSize:
		return KindInsufficientSize
	case ErrorTimeout:
		return KindTimeout
	case ErrorUninitialized, ErrorDriverNotLoaded:
		return KindUninitialized
	case ErrorAlreadyInitialized:
		return KindAlreadyInitialized
	case ErrorNoData:
		return KindNoData
	case ErrorLibraryNotFound:
		return KindLibraryLoadFailure
	default:
		return KindUnknown
	}
}

// errorOf translates a native return code into an error, or nil on Success.
// Every native call in this package funnels its result through here before
// any output is inspected.
func errorOf(op string, ret Return) error {
	if ret == Success {
		return nil
	}
	return &Error{Op: op, Kind: kindOf(ret), Code: ret}
}

func errInvalidHandle(op string) error {
	return &Error{Op: op, Kind: KindInvalidHandle}
}

func errClosed(op string) error {
	return &Error{Op: op, Kind: KindUninitialized}
}

func errUnsupported(op string) error {
	return &Error{Op: op, Kind: KindUnsupported}
}

func errInvalidArgument(op string) error {
	return &Error{Op: op, Kind: KindInvalidArgument}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsUnsupported reports whether the operation is not available on the
// target device, driver, or build.
func IsUnsupported(err error) bool { return IsKind(err, KindUnsupported) }

// IsNotFound reports whether a queried object was not found.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsInvalidHandle reports whether a handle was used after destruction.
func IsInvalidHandle(err error) bool { return IsKind(err, KindInvalidHandle) }

// IsUninitialized reports whether the library was not initialized or has
// been shut down.
func IsUninitialized(err error) bool { return IsKind(err, KindUninitialized) }

// IsAlreadyInitialized reports whether initialization was redundant.
func IsAlreadyInitialized(err error) bool { return IsKind(err, KindAlreadyInitialized) }

// IsTimeout reports whether a wait elapsed before an event arrived.
func IsTimeout(err error) bool { return IsKind(err, KindTimeout) }
