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

// Package nvml provides safe Go bindings for the NVIDIA Management
// Library. The shared library is loaded at runtime with dlopen, so
// binaries importing this package build and start on machines without
// the driver installed; New reports the load failure instead.
//
// The library ships several ABI revisions of many entry points, with
// suffixed symbol names and differing struct layouts. For every
// operation the package resolves the newest variant the installed
// driver exports, memoizes the outcome, and decodes results with the
// layout matching the resolved variant. Callers see one Go method per
// operation regardless of which revision served it.
//
// Errors carry a stable Kind classification alongside the native status
// code; predicates such as IsUnsupported and IsNotFound cover the
// common branches. Operations whose every available variant predates
// the supported baseline report KindUnsupported unless the binary is
// built with the nvmllegacy tag.
//
// All returned values are owned by the caller. Handle types that own a
// native object (GpuInstance, ComputeInstance, EventSet, GpmSample)
// become permanently unusable after Destroy or Free and report
// KindInvalidHandle afterwards.
package nvml
