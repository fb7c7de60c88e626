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

import "fmt"

// Return represents an NVML API return code. The values are part of the
// library's stable C ABI (nvmlReturn_t) and must not be renumbered.
type Return int32

const (
	Success                      Return = 0
	ErrorUninitialized           Return = 1
	ErrorInvalidArgument         Return = 2
	ErrorNotSupported            Return = 3
	ErrorNoPermission            Return = 4
	ErrorAlreadyInitialized      Return = 5
	ErrorNotFound                Return = 6
	ErrorInsufficientSize        Return = 7
	ErrorInsufficientPower       Return = 8
	ErrorDriverNotLoaded         Return = 9
	ErrorTimeout                 Return = 10
	ErrorIrqIssue                Return = 11
	ErrorLibraryNotFound         Return = 12
	ErrorFunctionNotFound        Return = 13
	ErrorCorruptedInforom        Return = 14
	ErrorGpuIsLost               Return = 15
	ErrorResetRequired           Return = 16
	ErrorOperatingSystem         Return = 17
	ErrorLibRmVersionMismatch    Return = 18
	ErrorInUse                   Return = 19
	ErrorMemory                  Return = 20
	ErrorNoData                  Return = 21
	ErrorVgpuEccNotSupported     Return = 22
	ErrorInsufficientResources   Return = 23
	ErrorFreqNotSupported        Return = 24
	ErrorArgumentVersionMismatch Return = 25
	ErrorDeprecated              Return = 26
	ErrorNotReady                Return = 27
	ErrorGpuNotFound             Return = 28
	ErrorUnknown                 Return = 999
)

// String returns the human readable description of a return code.
func (r Return) String() string {
	switch r {
	case Success:
		return "success"
	case ErrorUninitialized:
		return "library not initialized"
	case ErrorInvalidArgument:
		return "invalid argument"
	case ErrorNotSupported:
		return "not supported"
	case ErrorNoPermission:
		return "insufficient permissions"
	case ErrorAlreadyInitialized:
		return "already initialized"
	case ErrorNotFound:
		return "not found"
	case ErrorInsufficientSize:
		return "insufficient size"
	case ErrorInsufficientPower:
		return "insufficient external power"
	case ErrorDriverNotLoaded:
		return "driver not loaded"
	case ErrorTimeout:
		return "timeout"
	case ErrorIrqIssue:
		return "interrupt request issue"
	case ErrorLibraryNotFound:
		return "shared library not found"
	case ErrorFunctionNotFound:
		return "function not found"
	case ErrorCorruptedInforom:
		return "corrupted infoROM"
	case ErrorGpuIsLost:
		return "GPU is lost"
	case ErrorResetRequired:
		return "GPU requires reset"
	case ErrorOperatingSystem:
		return "blocked by operating system"
	case ErrorLibRmVersionMismatch:
		return "driver/library version mismatch"
	case ErrorInUse:
		return "GPU in use"
	case ErrorMemory:
		return "insufficient memory"
	case ErrorNoData:
		return "no data"
	case ErrorVgpuEccNotSupported:
		return "vGPU not supported with ECC enabled"
	case ErrorInsufficientResources:
		return "insufficient resources"
	case ErrorFreqNotSupported:
		return "frequency not supported"
	case ErrorArgumentVersionMismatch:
		return "argument version mismatch"
	case ErrorDeprecated:
		return "deprecated"
	case ErrorNotReady:
		return "system not ready"
	case ErrorGpuNotFound:
		return "no GPUs found"
	case ErrorUnknown:
		return "unknown internal error"
	default:
		return fmt.Sprintf("unrecognized return code %d", int32(r))
	}
}
