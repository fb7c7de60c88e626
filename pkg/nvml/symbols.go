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

// The NVML ABI evolves by adding suffixed variants of existing entry
// points (nvmlDeviceGetMemoryInfo_v2 next to nvmlDeviceGetMemoryInfo)
// rather than by bumping a library-wide version. A given driver install
// exports an arbitrary subset of the variants, so nothing about symbol
// availability is known until the library has been opened.
//
// This file holds the static inventory of every logical operation the
// package wraps, together with its known variants ordered newest to
// oldest, and the resolver that picks, once per operation per loaded
// library, the variant to bind. The resolved variant also selects the
// wire struct layout the calling wrapper must use; the two are never
// chosen independently.

// opID indexes the static operation table. The resolution cache is a
// fixed-size array keyed by opID, written at most once per entry.
type opID int

const (
	opInit opID = iota
	opInitWithFlags
	opShutdown
	opSystemGetDriverVersion
	opSystemGetNVMLVersion
	opSystemGetCudaDriverVersion
	opDeviceGetCount
	opDeviceGetHandleByIndex
	opDeviceGetHandleByUUID
	opDeviceGetHandleByPciBusId
	opDeviceGetName
	opDeviceGetUUID
	opDeviceGetIndex
	opDeviceGetMemoryInfo
	opDeviceGetPciInfo
	opDeviceGetUtilizationRates
	opDeviceGetTemperature
	opDeviceGetPowerUsage
	opDeviceGetComputeRunningProcesses
	opDeviceSetPersistenceMode
	opDeviceClearAccountingPids
	opDeviceGetMigMode
	opDeviceSetMigMode
	opDeviceGetGpuInstanceProfileInfo
	opDeviceCreateGpuInstance
	opGpuInstanceGetInfo
	opGpuInstanceDestroy
	opGpuInstanceCreateComputeInstance
	opGpuInstanceGetComputeInstances
	opComputeInstanceGetInfo
	opComputeInstanceDestroy
	opDeviceGetSupportedVgpus
	opDeviceGetCreatableVgpus
	opVgpuTypeGetName
	opVgpuTypeGetMaxInstances
	opDeviceGetActiveVgpus
	opVgpuInstanceGetUUID
	opVgpuInstanceGetVmID
	opEventSetCreate
	opDeviceRegisterEvents
	opEventSetWait
	opEventSetFree
	opGpmSampleAlloc
	opGpmSampleFree
	opGpmSampleGet
	opGpmQueryDeviceSupport
	opGpmMetricsGet

	opCount // sentinel, keep last
)

// variant is one ABI-versioned form of a logical operation. An empty
// suffix denotes the original unsuffixed entry point.
type variant struct {
	suffix string
	legacy bool
}

// operation is the static, compile-time descriptor of one logical
// operation: its base symbol name and the known variants ordered newest
// to oldest.
type operation struct {
	name     string
	variants []variant
}

// unversioned is the variant list shared by every operation that has a
// single ABI form.
var unversioned = []variant{{}}

var operations = [opCount]operation{
	opInit:                       {name: "nvmlInit", variants: []variant{{suffix: "_v2"}, {legacy: true}}},
	opInitWithFlags:              {name: "nvmlInitWithFlags", variants: unversioned},
	opShutdown:                   {name: "nvmlShutdown", variants: unversioned},
	opSystemGetDriverVersion:     {name: "nvmlSystemGetDriverVersion", variants: unversioned},
	opSystemGetNVMLVersion:       {name: "nvmlSystemGetNVMLVersion", variants: unversioned},
	opSystemGetCudaDriverVersion: {name: "nvmlSystemGetCudaDriverVersion", variants: []variant{{suffix: "_v2"}, {legacy: true}}},

	opDeviceGetCount:            {name: "nvmlDeviceGetCount", variants: []variant{{suffix: "_v2"}, {legacy: true}}},
	opDeviceGetHandleByIndex:    {name: "nvmlDeviceGetHandleByIndex", variants: []variant{{suffix: "_v2"}, {legacy: true}}},
	opDeviceGetHandleByUUID:     {name: "nvmlDeviceGetHandleByUUID", variants: unversioned},
	opDeviceGetHandleByPciBusId: {name: "nvmlDeviceGetHandleByPciBusId", variants: []variant{{suffix: "_v2"}, {legacy: true}}},
	opDeviceGetName:             {name: "nvmlDeviceGetName", variants: unversioned},
	opDeviceGetUUID:             {name: "nvmlDeviceGetUUID", variants: unversioned},
	opDeviceGetIndex:            {name: "nvmlDeviceGetIndex", variants: unversioned},

	// _v2 reads into a versioned struct with a reserved-memory field; the
	// original form uses the three-field layout. Decoders differ.
	opDeviceGetMemoryInfo: {name: "nvmlDeviceGetMemoryInfo", variants: []variant{{suffix: "_v2"}, {legacy: true}}},

	// _v3 widened the bus id buffer and moved the old one to a legacy
	// field; _v2 and the original form share the narrow layout.
	opDeviceGetPciInfo: {name: "nvmlDeviceGetPciInfo", variants: []variant{{suffix: "_v3"}, {suffix: "_v2", legacy: true}, {legacy: true}}},

	opDeviceGetUtilizationRates: {name: "nvmlDeviceGetUtilizationRates", variants: unversioned},
	opDeviceGetTemperature:      {name: "nvmlDeviceGetTemperature", variants: unversioned},
	opDeviceGetPowerUsage:       {name: "nvmlDeviceGetPowerUsage", variants: unversioned},

	// Each revision grew the per-process struct; the caller-visible retry
	// protocol is identical across variants.
	opDeviceGetComputeRunningProcesses: {name: "nvmlDeviceGetComputeRunningProcesses", variants: []variant{{suffix: "_v3"}, {suffix: "_v2", legacy: true}, {legacy: true}}},

	opDeviceSetPersistenceMode:  {name: "nvmlDeviceSetPersistenceMode", variants: unversioned},
	opDeviceClearAccountingPids: {name: "nvmlDeviceClearAccountingPids", variants: unversioned},

	opDeviceGetMigMode:                 {name: "nvmlDeviceGetMigMode", variants: unversioned},
	opDeviceSetMigMode:                 {name: "nvmlDeviceSetMigMode", variants: unversioned},
	opDeviceGetGpuInstanceProfileInfo:  {name: "nvmlDeviceGetGpuInstanceProfileInfo", variants: unversioned},
	opDeviceCreateGpuInstance:          {name: "nvmlDeviceCreateGpuInstance", variants: unversioned},
	opGpuInstanceGetInfo:               {name: "nvmlGpuInstanceGetInfo", variants: unversioned},
	opGpuInstanceDestroy:               {name: "nvmlGpuInstanceDestroy", variants: unversioned},
	opGpuInstanceCreateComputeInstance: {name: "nvmlGpuInstanceCreateComputeInstance", variants: unversioned},
	opGpuInstanceGetComputeInstances:   {name: "nvmlGpuInstanceGetComputeInstances", variants: unversioned},
	opComputeInstanceGetInfo:           {name: "nvmlComputeInstanceGetInfo", variants: []variant{{suffix: "_v2"}, {legacy: true}}},
	opComputeInstanceDestroy:           {name: "nvmlComputeInstanceDestroy", variants: unversioned},

	opDeviceGetSupportedVgpus: {name: "nvmlDeviceGetSupportedVgpus", variants: unversioned},
	opDeviceGetCreatableVgpus: {name: "nvmlDeviceGetCreatableVgpus", variants: unversioned},
	opVgpuTypeGetName:         {name: "nvmlVgpuTypeGetName", variants: unversioned},
	opVgpuTypeGetMaxInstances: {name: "nvmlVgpuTypeGetMaxInstances", variants: unversioned},
	opDeviceGetActiveVgpus:    {name: "nvmlDeviceGetActiveVgpus", variants: unversioned},
	opVgpuInstanceGetUUID:     {name: "nvmlVgpuInstanceGetUUID", variants: unversioned},
	opVgpuInstanceGetVmID:     {name: "nvmlVgpuInstanceGetVmID", variants: unversioned},

	opEventSetCreate:       {name: "nvmlEventSetCreate", variants: unversioned},
	opDeviceRegisterEvents: {name: "nvmlDeviceRegisterEvents", variants: unversioned},
	opEventSetWait:         {name: "nvmlEventSetWait", variants: []variant{{suffix: "_v2"}, {legacy: true}}},
	opEventSetFree:         {name: "nvmlEventSetFree", variants: unversioned},

	opGpmSampleAlloc:        {name: "nvmlGpmSampleAlloc", variants: unversioned},
	opGpmSampleFree:         {name: "nvmlGpmSampleFree", variants: unversioned},
	opGpmSampleGet:          {name: "nvmlGpmSampleGet", variants: unversioned},
	opGpmQueryDeviceSupport: {name: "nvmlGpmQueryDeviceSupport", variants: unversioned},
	opGpmMetricsGet:         {name: "nvmlGpmMetricsGet", variants: unversioned},
}

// resolvedOp is the memoized outcome of resolving one operation against
// the loaded library: the symbol that won, its variant suffix, or the
// error to return when no variant is available.
type resolvedOp struct {
	symbol string
	suffix string
	err    error
}

// resolveOperation picks the variant to bind for one operation. The first
// variant, scanning newest to oldest, whose symbol the library exports
// wins. Legacy variants are skipped entirely when legacy functions are
// compiled out, even if the symbol is present.
func resolveOperation(op operation, syms symbolLookup, legacyEnabled bool) resolvedOp {
	for _, v := range op.variants {
		if v.legacy && !legacyEnabled {
			continue
		}
		symbol := op.name + v.suffix
		if err := syms.lookup(symbol); err != nil {
			continue
		}
		return resolvedOp{symbol: symbol, suffix: v.suffix}
	}
	return resolvedOp{err: errUnsupported(op.name)}
}

// resolve returns the memoized resolution for id, computing it on first
// use. Resolution happens at most once per operation for the life of the
// Library; concurrent readers never re-trigger it.
func (l *Library) resolve(id opID) resolvedOp {
	l.resolveOnce[id].Do(func() {
		l.resolved[id] = resolveOperation(operations[id], l.native, l.legacyEnabled)
	})
	return l.resolved[id]
}
