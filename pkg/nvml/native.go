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

import "unsafe"

// Opaque native object references. The native library owns the objects;
// these values are only ever handed back to subsequent native calls.
type (
	nvmlDevice          unsafe.Pointer
	nvmlGpuInstance     unsafe.Pointer
	nvmlComputeInstance unsafe.Pointer
	nvmlEventSet        unsafe.Pointer
	nvmlGpmSample       unsafe.Pointer
	nvmlVgpuTypeId      uint32
	nvmlVgpuInstance    uint32
)

// symbolLookup reports whether a named entry point exists in the loaded
// library. The version resolver consults it during resolution.
type symbolLookup interface {
	lookup(symbol string) error
}

// nativeLib is the raw call surface of the loaded library: symbol lookup
// plus one method per native entry point, including every ABI-suffixed
// variant. The production implementation dispatches through function
// pointers resolved from the shared library; tests substitute a scripted
// fake. Wrappers never call a method whose symbol the resolver has not
// confirmed present.
type nativeLib interface {
	symbolLookup
	close() error

	nvmlInit_v2() Return
	nvmlInit() Return
	nvmlInitWithFlags(flags uint32) Return
	nvmlShutdown() Return

	nvmlSystemGetDriverVersion(buf *byte, length uint32) Return
	nvmlSystemGetNVMLVersion(buf *byte, length uint32) Return
	nvmlSystemGetCudaDriverVersion_v2(version *int32) Return
	nvmlSystemGetCudaDriverVersion(version *int32) Return

	nvmlDeviceGetCount_v2(count *uint32) Return
	nvmlDeviceGetCount(count *uint32) Return
	nvmlDeviceGetHandleByIndex_v2(index uint32, device *nvmlDevice) Return
	nvmlDeviceGetHandleByIndex(index uint32, device *nvmlDevice) Return
	nvmlDeviceGetHandleByUUID(uuid string, device *nvmlDevice) Return
	nvmlDeviceGetHandleByPciBusId_v2(busID string, device *nvmlDevice) Return
	nvmlDeviceGetHandleByPciBusId(busID string, device *nvmlDevice) Return

	nvmlDeviceGetName(device nvmlDevice, buf *byte, length uint32) Return
	nvmlDeviceGetUUID(device nvmlDevice, buf *byte, length uint32) Return
	nvmlDeviceGetIndex(device nvmlDevice, index *uint32) Return
	nvmlDeviceGetMemoryInfo_v2(device nvmlDevice, mem *nvmlMemoryV2) Return
	nvmlDeviceGetMemoryInfo(device nvmlDevice, mem *nvmlMemory) Return
	nvmlDeviceGetPciInfo_v3(device nvmlDevice, pci *nvmlPciInfoV3) Return
	nvmlDeviceGetPciInfo_v2(device nvmlDevice, pci *nvmlPciInfoLegacy) Return
	nvmlDeviceGetPciInfo(device nvmlDevice, pci *nvmlPciInfoLegacy) Return
	nvmlDeviceGetUtilizationRates(device nvmlDevice, util *nvmlUtilization) Return
	nvmlDeviceGetTemperature(device nvmlDevice, sensor uint32, temp *uint32) Return
	nvmlDeviceGetPowerUsage(device nvmlDevice, milliwatts *uint32) Return
	nvmlDeviceGetComputeRunningProcesses_v3(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV3) Return
	nvmlDeviceGetComputeRunningProcesses_v2(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV2) Return
	nvmlDeviceGetComputeRunningProcesses(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV1) Return
	nvmlDeviceSetPersistenceMode(device nvmlDevice, mode uint32) Return
	nvmlDeviceClearAccountingPids(device nvmlDevice) Return

	nvmlDeviceGetMigMode(device nvmlDevice, current, pending *uint32) Return
	nvmlDeviceSetMigMode(device nvmlDevice, mode uint32, activationStatus *Return) Return
	nvmlDeviceGetGpuInstanceProfileInfo(device nvmlDevice, profile uint32, info *nvmlGpuInstanceProfileInfo) Return
	nvmlDeviceCreateGpuInstance(device nvmlDevice, profileID uint32, gi *nvmlGpuInstance) Return
	nvmlGpuInstanceGetInfo(gi nvmlGpuInstance, info *nvmlGpuInstanceInfo) Return
	nvmlGpuInstanceDestroy(gi nvmlGpuInstance) Return
	nvmlGpuInstanceCreateComputeInstance(gi nvmlGpuInstance, profileID uint32, ci *nvmlComputeInstance) Return
	nvmlGpuInstanceGetComputeInstances(gi nvmlGpuInstance, profileID uint32, cis *nvmlComputeInstance, count *uint32) Return
	nvmlComputeInstanceGetInfo_v2(ci nvmlComputeInstance, info *nvmlComputeInstanceInfo) Return
	nvmlComputeInstanceGetInfo(ci nvmlComputeInstance, info *nvmlComputeInstanceInfo) Return
	nvmlComputeInstanceDestroy(ci nvmlComputeInstance) Return

	nvmlDeviceGetSupportedVgpus(device nvmlDevice, count *uint32, typeIDs *nvmlVgpuTypeId) Return
	nvmlDeviceGetCreatableVgpus(device nvmlDevice, count *uint32, typeIDs *nvmlVgpuTypeId) Return
	nvmlVgpuTypeGetName(typeID nvmlVgpuTypeId, buf *byte, size *uint32) Return
	nvmlVgpuTypeGetMaxInstances(device nvmlDevice, typeID nvmlVgpuTypeId, count *uint32) Return
	nvmlDeviceGetActiveVgpus(device nvmlDevice, count *uint32, instances *nvmlVgpuInstance) Return
	nvmlVgpuInstanceGetUUID(instance nvmlVgpuInstance, buf *byte, size uint32) Return
	nvmlVgpuInstanceGetVmID(instance nvmlVgpuInstance, buf *byte, size uint32, idType *uint32) Return

	nvmlEventSetCreate(set *nvmlEventSet) Return
	nvmlDeviceRegisterEvents(device nvmlDevice, eventTypes uint64, set nvmlEventSet) Return
	nvmlEventSetWait_v2(set nvmlEventSet, data *nvmlEventDataV2, timeoutMs uint32) Return
	nvmlEventSetWait(set nvmlEventSet, data *nvmlEventDataV1, timeoutMs uint32) Return
	nvmlEventSetFree(set nvmlEventSet) Return

	nvmlGpmSampleAlloc(sample *nvmlGpmSample) Return
	nvmlGpmSampleFree(sample nvmlGpmSample) Return
	nvmlGpmSampleGet(device nvmlDevice, sample nvmlGpmSample) Return
	nvmlGpmQueryDeviceSupport(device nvmlDevice, support *nvmlGpmSupport) Return
	nvmlGpmMetricsGet(metrics *nvmlGpmMetricsGetType) Return
}

// unimplementedNative satisfies nativeLib with calls that uniformly report
// ErrorFunctionNotFound and a symbol table that exports nothing. It backs
// the non-linux build and gives test fakes a base to embed.
type unimplementedNative struct{}

var _ nativeLib = unimplementedNative{}

func (unimplementedNative) lookup(string) error { return errorOf("lookup", ErrorFunctionNotFound) }
func (unimplementedNative) close() error        { return nil }

func (unimplementedNative) nvmlInit_v2() Return             { return ErrorFunctionNotFound }
func (unimplementedNative) nvmlInit() Return                { return ErrorFunctionNotFound }
func (unimplementedNative) nvmlInitWithFlags(uint32) Return { return ErrorFunctionNotFound }
func (unimplementedNative) nvmlShutdown() Return            { return ErrorFunctionNotFound }

func (unimplementedNative) nvmlSystemGetDriverVersion(*byte, uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlSystemGetNVMLVersion(*byte, uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlSystemGetCudaDriverVersion_v2(*int32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlSystemGetCudaDriverVersion(*int32) Return {
	return ErrorFunctionNotFound
}

func (unimplementedNative) nvmlDeviceGetCount_v2(*uint32) Return { return ErrorFunctionNotFound }
func (unimplementedNative) nvmlDeviceGetCount(*uint32) Return    { return ErrorFunctionNotFound }
func (unimplementedNative) nvmlDeviceGetHandleByIndex_v2(uint32, *nvmlDevice) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetHandleByIndex(uint32, *nvmlDevice) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetHandleByUUID(string, *nvmlDevice) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetHandleByPciBusId_v2(string, *nvmlDevice) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetHandleByPciBusId(string, *nvmlDevice) Return {
	return ErrorFunctionNotFound
}

func (unimplementedNative) nvmlDeviceGetName(nvmlDevice, *byte, uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetUUID(nvmlDevice, *byte, uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetIndex(nvmlDevice, *uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetMemoryInfo_v2(nvmlDevice, *nvmlMemoryV2) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetMemoryInfo(nvmlDevice, *nvmlMemory) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetPciInfo_v3(nvmlDevice, *nvmlPciInfoV3) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetPciInfo_v2(nvmlDevice, *nvmlPciInfoLegacy) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetPciInfo(nvmlDevice, *nvmlPciInfoLegacy) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetUtilizationRates(nvmlDevice, *nvmlUtilization) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetTemperature(nvmlDevice, uint32, *uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetPowerUsage(nvmlDevice, *uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetComputeRunningProcesses_v3(nvmlDevice, *uint32, *nvmlProcessInfoV3) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetComputeRunningProcesses_v2(nvmlDevice, *uint32, *nvmlProcessInfoV2) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetComputeRunningProcesses(nvmlDevice, *uint32, *nvmlProcessInfoV1) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceSetPersistenceMode(nvmlDevice, uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceClearAccountingPids(nvmlDevice) Return {
	return ErrorFunctionNotFound
}

func (unimplementedNative) nvmlDeviceGetMigMode(nvmlDevice, *uint32, *uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceSetMigMode(nvmlDevice, uint32, *Return) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetGpuInstanceProfileInfo(nvmlDevice, uint32, *nvmlGpuInstanceProfileInfo) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceCreateGpuInstance(nvmlDevice, uint32, *nvmlGpuInstance) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlGpuInstanceGetInfo(nvmlGpuInstance, *nvmlGpuInstanceInfo) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlGpuInstanceDestroy(nvmlGpuInstance) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlGpuInstanceCreateComputeInstance(nvmlGpuInstance, uint32, *nvmlComputeInstance) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlGpuInstanceGetComputeInstances(nvmlGpuInstance, uint32, *nvmlComputeInstance, *uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlComputeInstanceGetInfo_v2(nvmlComputeInstance, *nvmlComputeInstanceInfo) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlComputeInstanceGetInfo(nvmlComputeInstance, *nvmlComputeInstanceInfo) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlComputeInstanceDestroy(nvmlComputeInstance) Return {
	return ErrorFunctionNotFound
}

func (unimplementedNative) nvmlDeviceGetSupportedVgpus(nvmlDevice, *uint32, *nvmlVgpuTypeId) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetCreatableVgpus(nvmlDevice, *uint32, *nvmlVgpuTypeId) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlVgpuTypeGetName(nvmlVgpuTypeId, *byte, *uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlVgpuTypeGetMaxInstances(nvmlDevice, nvmlVgpuTypeId, *uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlDeviceGetActiveVgpus(nvmlDevice, *uint32, *nvmlVgpuInstance) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlVgpuInstanceGetUUID(nvmlVgpuInstance, *byte, uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlVgpuInstanceGetVmID(nvmlVgpuInstance, *byte, uint32, *uint32) Return {
	return ErrorFunctionNotFound
}

func (unimplementedNative) nvmlEventSetCreate(*nvmlEventSet) Return { return ErrorFunctionNotFound }
func (unimplementedNative) nvmlDeviceRegisterEvents(nvmlDevice, uint64, nvmlEventSet) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlEventSetWait_v2(nvmlEventSet, *nvmlEventDataV2, uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlEventSetWait(nvmlEventSet, *nvmlEventDataV1, uint32) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlEventSetFree(nvmlEventSet) Return { return ErrorFunctionNotFound }

func (unimplementedNative) nvmlGpmSampleAlloc(*nvmlGpmSample) Return { return ErrorFunctionNotFound }
func (unimplementedNative) nvmlGpmSampleFree(nvmlGpmSample) Return   { return ErrorFunctionNotFound }
func (unimplementedNative) nvmlGpmSampleGet(nvmlDevice, nvmlGpmSample) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlGpmQueryDeviceSupport(nvmlDevice, *nvmlGpmSupport) Return {
	return ErrorFunctionNotFound
}
func (unimplementedNative) nvmlGpmMetricsGet(*nvmlGpmMetricsGetType) Return {
	return ErrorFunctionNotFound
}
