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
	"sync"
	"unsafe"
)

// fakeNative is a scripted nativeLib for tests. It embeds
// unimplementedNative so only the entry points a test cares about need
// a script; everything else reports ErrorFunctionNotFound. The symbol
// table the resolver sees is the explicit symbols set, so tests model
// old drivers by simply listing fewer symbols. Every dispatched call is
// recorded by symbol name.
type fakeNative struct {
	unimplementedNative

	symbols map[string]struct{}
	mu      sync.Mutex
	calls   []string
	closed  bool

	initV2Fn           func() Return
	initFn             func() Return
	initWithFlagsFn    func(flags uint32) Return
	shutdownFn         func() Return
	driverVersionFn    func(buf *byte, length uint32) Return
	nvmlVersionFn      func(buf *byte, length uint32) Return
	cudaVersionV2Fn    func(version *int32) Return
	cudaVersionFn      func(version *int32) Return
	deviceCountV2Fn    func(count *uint32) Return
	deviceCountFn      func(count *uint32) Return
	handleByIndexV2Fn  func(index uint32, device *nvmlDevice) Return
	handleByIndexFn    func(index uint32, device *nvmlDevice) Return
	handleByUUIDFn     func(uuid string, device *nvmlDevice) Return
	handleByBusIdV2Fn  func(busID string, device *nvmlDevice) Return
	handleByBusIdFn    func(busID string, device *nvmlDevice) Return
	nameFn             func(device nvmlDevice, buf *byte, length uint32) Return
	uuidFn             func(device nvmlDevice, buf *byte, length uint32) Return
	indexFn            func(device nvmlDevice, index *uint32) Return
	memoryInfoV2Fn     func(device nvmlDevice, mem *nvmlMemoryV2) Return
	memoryInfoFn       func(device nvmlDevice, mem *nvmlMemory) Return
	pciInfoV3Fn        func(device nvmlDevice, pci *nvmlPciInfoV3) Return
	pciInfoV2Fn        func(device nvmlDevice, pci *nvmlPciInfoLegacy) Return
	pciInfoFn          func(device nvmlDevice, pci *nvmlPciInfoLegacy) Return
	utilizationFn      func(device nvmlDevice, util *nvmlUtilization) Return
	temperatureFn      func(device nvmlDevice, sensor uint32, temp *uint32) Return
	powerUsageFn       func(device nvmlDevice, milliwatts *uint32) Return
	processesV3Fn      func(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV3) Return
	processesV2Fn      func(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV2) Return
	processesFn        func(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV1) Return
	setPersistenceFn   func(device nvmlDevice, mode uint32) Return
	clearAccountingFn  func(device nvmlDevice) Return
	migModeFn          func(device nvmlDevice, current, pending *uint32) Return
	setMigModeFn       func(device nvmlDevice, mode uint32, activationStatus *Return) Return
	giProfileInfoFn    func(device nvmlDevice, profile uint32, info *nvmlGpuInstanceProfileInfo) Return
	createGiFn         func(device nvmlDevice, profileID uint32, gi *nvmlGpuInstance) Return
	giInfoFn           func(gi nvmlGpuInstance, info *nvmlGpuInstanceInfo) Return
	giDestroyFn        func(gi nvmlGpuInstance) Return
	createCiFn         func(gi nvmlGpuInstance, profileID uint32, ci *nvmlComputeInstance) Return
	ciListFn           func(gi nvmlGpuInstance, profileID uint32, cis *nvmlComputeInstance, count *uint32) Return
	ciInfoV2Fn         func(ci nvmlComputeInstance, info *nvmlComputeInstanceInfo) Return
	ciInfoFn           func(ci nvmlComputeInstance, info *nvmlComputeInstanceInfo) Return
	ciDestroyFn        func(ci nvmlComputeInstance) Return
	supportedVgpusFn   func(device nvmlDevice, count *uint32, typeIDs *nvmlVgpuTypeId) Return
	creatableVgpusFn   func(device nvmlDevice, count *uint32, typeIDs *nvmlVgpuTypeId) Return
	vgpuTypeNameFn     func(typeID nvmlVgpuTypeId, buf *byte, size *uint32) Return
	vgpuMaxInstancesFn func(device nvmlDevice, typeID nvmlVgpuTypeId, count *uint32) Return
	activeVgpusFn      func(device nvmlDevice, count *uint32, instances *nvmlVgpuInstance) Return
	vgpuUUIDFn         func(instance nvmlVgpuInstance, buf *byte, size uint32) Return
	vgpuVmIDFn         func(instance nvmlVgpuInstance, buf *byte, size uint32, idType *uint32) Return
	eventSetCreateFn   func(set *nvmlEventSet) Return
	registerEventsFn   func(device nvmlDevice, eventTypes uint64, set nvmlEventSet) Return
	eventWaitV2Fn      func(set nvmlEventSet, data *nvmlEventDataV2, timeoutMs uint32) Return
	eventWaitFn        func(set nvmlEventSet, data *nvmlEventDataV1, timeoutMs uint32) Return
	eventSetFreeFn     func(set nvmlEventSet) Return
	gpmAllocFn         func(sample *nvmlGpmSample) Return
	gpmFreeFn          func(sample nvmlGpmSample) Return
	gpmGetFn           func(device nvmlDevice, sample nvmlGpmSample) Return
	gpmSupportFn       func(device nvmlDevice, support *nvmlGpmSupport) Return
	gpmMetricsFn       func(metrics *nvmlGpmMetricsGetType) Return
}

// newFakeNative builds a fake whose symbol table exports exactly the
// given names. Scripted entry points with no explicit func report
// Success and write nothing.
func newFakeNative(symbols ...string) *fakeNative {
	f := &fakeNative{symbols: make(map[string]struct{}, len(symbols))}
	for _, s := range symbols {
		f.symbols[s] = struct{}{}
	}
	return f
}

func (f *fakeNative) lookup(symbol string) error {
	if _, ok := f.symbols[symbol]; ok {
		return nil
	}
	return fmt.Errorf("symbol %q not exported", symbol)
}

func (f *fakeNative) close() error {
	f.closed = true
	return nil
}

func (f *fakeNative) record(symbol string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, symbol)
}

// callCount returns how many times the named entry point was dispatched.
func (f *fakeNative) callCount(symbol string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == symbol {
			n++
		}
	}
	return n
}

func (f *fakeNative) nvmlInit_v2() Return {
	f.record("nvmlInit_v2")
	if f.initV2Fn != nil {
		return f.initV2Fn()
	}
	return Success
}

func (f *fakeNative) nvmlInit() Return {
	f.record("nvmlInit")
	if f.initFn != nil {
		return f.initFn()
	}
	return Success
}

func (f *fakeNative) nvmlInitWithFlags(flags uint32) Return {
	f.record("nvmlInitWithFlags")
	if f.initWithFlagsFn != nil {
		return f.initWithFlagsFn(flags)
	}
	return Success
}

func (f *fakeNative) nvmlShutdown() Return {
	f.record("nvmlShutdown")
	if f.shutdownFn != nil {
		return f.shutdownFn()
	}
	return Success
}

func (f *fakeNative) nvmlSystemGetDriverVersion(buf *byte, length uint32) Return {
	f.record("nvmlSystemGetDriverVersion")
	if f.driverVersionFn != nil {
		return f.driverVersionFn(buf, length)
	}
	return Success
}

func (f *fakeNative) nvmlSystemGetNVMLVersion(buf *byte, length uint32) Return {
	f.record("nvmlSystemGetNVMLVersion")
	if f.nvmlVersionFn != nil {
		return f.nvmlVersionFn(buf, length)
	}
	return Success
}

func (f *fakeNative) nvmlSystemGetCudaDriverVersion_v2(version *int32) Return {
	f.record("nvmlSystemGetCudaDriverVersion_v2")
	if f.cudaVersionV2Fn != nil {
		return f.cudaVersionV2Fn(version)
	}
	return Success
}

func (f *fakeNative) nvmlSystemGetCudaDriverVersion(version *int32) Return {
	f.record("nvmlSystemGetCudaDriverVersion")
	if f.cudaVersionFn != nil {
		return f.cudaVersionFn(version)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetCount_v2(count *uint32) Return {
	f.record("nvmlDeviceGetCount_v2")
	if f.deviceCountV2Fn != nil {
		return f.deviceCountV2Fn(count)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetCount(count *uint32) Return {
	f.record("nvmlDeviceGetCount")
	if f.deviceCountFn != nil {
		return f.deviceCountFn(count)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetHandleByIndex_v2(index uint32, device *nvmlDevice) Return {
	f.record("nvmlDeviceGetHandleByIndex_v2")
	if f.handleByIndexV2Fn != nil {
		return f.handleByIndexV2Fn(index, device)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetHandleByIndex(index uint32, device *nvmlDevice) Return {
	f.record("nvmlDeviceGetHandleByIndex")
	if f.handleByIndexFn != nil {
		return f.handleByIndexFn(index, device)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetHandleByUUID(uuid string, device *nvmlDevice) Return {
	f.record("nvmlDeviceGetHandleByUUID")
	if f.handleByUUIDFn != nil {
		return f.handleByUUIDFn(uuid, device)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetHandleByPciBusId_v2(busID string, device *nvmlDevice) Return {
	f.record("nvmlDeviceGetHandleByPciBusId_v2")
	if f.handleByBusIdV2Fn != nil {
		return f.handleByBusIdV2Fn(busID, device)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetHandleByPciBusId(busID string, device *nvmlDevice) Return {
	f.record("nvmlDeviceGetHandleByPciBusId")
	if f.handleByBusIdFn != nil {
		return f.handleByBusIdFn(busID, device)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetName(device nvmlDevice, buf *byte, length uint32) Return {
	f.record("nvmlDeviceGetName")
	if f.nameFn != nil {
		return f.nameFn(device, buf, length)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetUUID(device nvmlDevice, buf *byte, length uint32) Return {
	f.record("nvmlDeviceGetUUID")
	if f.uuidFn != nil {
		return f.uuidFn(device, buf, length)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetIndex(device nvmlDevice, index *uint32) Return {
	f.record("nvmlDeviceGetIndex")
	if f.indexFn != nil {
		return f.indexFn(device, index)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetMemoryInfo_v2(device nvmlDevice, mem *nvmlMemoryV2) Return {
	f.record("nvmlDeviceGetMemoryInfo_v2")
	if f.memoryInfoV2Fn != nil {
		return f.memoryInfoV2Fn(device, mem)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetMemoryInfo(device nvmlDevice, mem *nvmlMemory) Return {
	f.record("nvmlDeviceGetMemoryInfo")
	if f.memoryInfoFn != nil {
		return f.memoryInfoFn(device, mem)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetPciInfo_v3(device nvmlDevice, pci *nvmlPciInfoV3) Return {
	f.record("nvmlDeviceGetPciInfo_v3")
	if f.pciInfoV3Fn != nil {
		return f.pciInfoV3Fn(device, pci)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetPciInfo_v2(device nvmlDevice, pci *nvmlPciInfoLegacy) Return {
	f.record("nvmlDeviceGetPciInfo_v2")
	if f.pciInfoV2Fn != nil {
		return f.pciInfoV2Fn(device, pci)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetPciInfo(device nvmlDevice, pci *nvmlPciInfoLegacy) Return {
	f.record("nvmlDeviceGetPciInfo")
	if f.pciInfoFn != nil {
		return f.pciInfoFn(device, pci)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetUtilizationRates(device nvmlDevice, util *nvmlUtilization) Return {
	f.record("nvmlDeviceGetUtilizationRates")
	if f.utilizationFn != nil {
		return f.utilizationFn(device, util)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetTemperature(device nvmlDevice, sensor uint32, temp *uint32) Return {
	f.record("nvmlDeviceGetTemperature")
	if f.temperatureFn != nil {
		return f.temperatureFn(device, sensor, temp)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetPowerUsage(device nvmlDevice, milliwatts *uint32) Return {
	f.record("nvmlDeviceGetPowerUsage")
	if f.powerUsageFn != nil {
		return f.powerUsageFn(device, milliwatts)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetComputeRunningProcesses_v3(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV3) Return {
	f.record("nvmlDeviceGetComputeRunningProcesses_v3")
	if f.processesV3Fn != nil {
		return f.processesV3Fn(device, count, infos)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetComputeRunningProcesses_v2(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV2) Return {
	f.record("nvmlDeviceGetComputeRunningProcesses_v2")
	if f.processesV2Fn != nil {
		return f.processesV2Fn(device, count, infos)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetComputeRunningProcesses(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV1) Return {
	f.record("nvmlDeviceGetComputeRunningProcesses")
	if f.processesFn != nil {
		return f.processesFn(device, count, infos)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceSetPersistenceMode(device nvmlDevice, mode uint32) Return {
	f.record("nvmlDeviceSetPersistenceMode")
	if f.setPersistenceFn != nil {
		return f.setPersistenceFn(device, mode)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceClearAccountingPids(device nvmlDevice) Return {
	f.record("nvmlDeviceClearAccountingPids")
	if f.clearAccountingFn != nil {
		return f.clearAccountingFn(device)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetMigMode(device nvmlDevice, current, pending *uint32) Return {
	f.record("nvmlDeviceGetMigMode")
	if f.migModeFn != nil {
		return f.migModeFn(device, current, pending)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceSetMigMode(device nvmlDevice, mode uint32, activationStatus *Return) Return {
	f.record("nvmlDeviceSetMigMode")
	if f.setMigModeFn != nil {
		return f.setMigModeFn(device, mode, activationStatus)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetGpuInstanceProfileInfo(device nvmlDevice, profile uint32, info *nvmlGpuInstanceProfileInfo) Return {
	f.record("nvmlDeviceGetGpuInstanceProfileInfo")
	if f.giProfileInfoFn != nil {
		return f.giProfileInfoFn(device, profile, info)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceCreateGpuInstance(device nvmlDevice, profileID uint32, gi *nvmlGpuInstance) Return {
	f.record("nvmlDeviceCreateGpuInstance")
	if f.createGiFn != nil {
		return f.createGiFn(device, profileID, gi)
	}
	return Success
}

func (f *fakeNative) nvmlGpuInstanceGetInfo(gi nvmlGpuInstance, info *nvmlGpuInstanceInfo) Return {
	f.record("nvmlGpuInstanceGetInfo")
	if f.giInfoFn != nil {
		return f.giInfoFn(gi, info)
	}
	return Success
}

func (f *fakeNative) nvmlGpuInstanceDestroy(gi nvmlGpuInstance) Return {
	f.record("nvmlGpuInstanceDestroy")
	if f.giDestroyFn != nil {
		return f.giDestroyFn(gi)
	}
	return Success
}

func (f *fakeNative) nvmlGpuInstanceCreateComputeInstance(gi nvmlGpuInstance, profileID uint32, ci *nvmlComputeInstance) Return {
	f.record("nvmlGpuInstanceCreateComputeInstance")
	if f.createCiFn != nil {
		return f.createCiFn(gi, profileID, ci)
	}
	return Success
}

func (f *fakeNative) nvmlGpuInstanceGetComputeInstances(gi nvmlGpuInstance, profileID uint32, cis *nvmlComputeInstance, count *uint32) Return {
	f.record("nvmlGpuInstanceGetComputeInstances")
	if f.ciListFn != nil {
		return f.ciListFn(gi, profileID, cis, count)
	}
	return Success
}

func (f *fakeNative) nvmlComputeInstanceGetInfo_v2(ci nvmlComputeInstance, info *nvmlComputeInstanceInfo) Return {
	f.record("nvmlComputeInstanceGetInfo_v2")
	if f.ciInfoV2Fn != nil {
		return f.ciInfoV2Fn(ci, info)
	}
	return Success
}

func (f *fakeNative) nvmlComputeInstanceGetInfo(ci nvmlComputeInstance, info *nvmlComputeInstanceInfo) Return {
	f.record("nvmlComputeInstanceGetInfo")
	if f.ciInfoFn != nil {
		return f.ciInfoFn(ci, info)
	}
	return Success
}

func (f *fakeNative) nvmlComputeInstanceDestroy(ci nvmlComputeInstance) Return {
	f.record("nvmlComputeInstanceDestroy")
	if f.ciDestroyFn != nil {
		return f.ciDestroyFn(ci)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetSupportedVgpus(device nvmlDevice, count *uint32, typeIDs *nvmlVgpuTypeId) Return {
	f.record("nvmlDeviceGetSupportedVgpus")
	if f.supportedVgpusFn != nil {
		return f.supportedVgpusFn(device, count, typeIDs)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetCreatableVgpus(device nvmlDevice, count *uint32, typeIDs *nvmlVgpuTypeId) Return {
	f.record("nvmlDeviceGetCreatableVgpus")
	if f.creatableVgpusFn != nil {
		return f.creatableVgpusFn(device, count, typeIDs)
	}
	return Success
}

func (f *fakeNative) nvmlVgpuTypeGetName(typeID nvmlVgpuTypeId, buf *byte, size *uint32) Return {
	f.record("nvmlVgpuTypeGetName")
	if f.vgpuTypeNameFn != nil {
		return f.vgpuTypeNameFn(typeID, buf, size)
	}
	return Success
}

func (f *fakeNative) nvmlVgpuTypeGetMaxInstances(device nvmlDevice, typeID nvmlVgpuTypeId, count *uint32) Return {
	f.record("nvmlVgpuTypeGetMaxInstances")
	if f.vgpuMaxInstancesFn != nil {
		return f.vgpuMaxInstancesFn(device, typeID, count)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceGetActiveVgpus(device nvmlDevice, count *uint32, instances *nvmlVgpuInstance) Return {
	f.record("nvmlDeviceGetActiveVgpus")
	if f.activeVgpusFn != nil {
		return f.activeVgpusFn(device, count, instances)
	}
	return Success
}

func (f *fakeNative) nvmlVgpuInstanceGetUUID(instance nvmlVgpuInstance, buf *byte, size uint32) Return {
	f.record("nvmlVgpuInstanceGetUUID")
	if f.vgpuUUIDFn != nil {
		return f.vgpuUUIDFn(instance, buf, size)
	}
	return Success
}

func (f *fakeNative) nvmlVgpuInstanceGetVmID(instance nvmlVgpuInstance, buf *byte, size uint32, idType *uint32) Return {
	f.record("nvmlVgpuInstanceGetVmID")
	if f.vgpuVmIDFn != nil {
		return f.vgpuVmIDFn(instance, buf, size, idType)
	}
	return Success
}

func (f *fakeNative) nvmlEventSetCreate(set *nvmlEventSet) Return {
	f.record("nvmlEventSetCreate")
	if f.eventSetCreateFn != nil {
		return f.eventSetCreateFn(set)
	}
	return Success
}

func (f *fakeNative) nvmlDeviceRegisterEvents(device nvmlDevice, eventTypes uint64, set nvmlEventSet) Return {
	f.record("nvmlDeviceRegisterEvents")
	if f.registerEventsFn != nil {
		return f.registerEventsFn(device, eventTypes, set)
	}
	return Success
}

func (f *fakeNative) nvmlEventSetWait_v2(set nvmlEventSet, data *nvmlEventDataV2, timeoutMs uint32) Return {
	f.record("nvmlEventSetWait_v2")
	if f.eventWaitV2Fn != nil {
		return f.eventWaitV2Fn(set, data, timeoutMs)
	}
	return Success
}

func (f *fakeNative) nvmlEventSetWait(set nvmlEventSet, data *nvmlEventDataV1, timeoutMs uint32) Return {
	f.record("nvmlEventSetWait")
	if f.eventWaitFn != nil {
		return f.eventWaitFn(set, data, timeoutMs)
	}
	return Success
}

func (f *fakeNative) nvmlEventSetFree(set nvmlEventSet) Return {
	f.record("nvmlEventSetFree")
	if f.eventSetFreeFn != nil {
		return f.eventSetFreeFn(set)
	}
	return Success
}

func (f *fakeNative) nvmlGpmSampleAlloc(sample *nvmlGpmSample) Return {
	f.record("nvmlGpmSampleAlloc")
	if f.gpmAllocFn != nil {
		return f.gpmAllocFn(sample)
	}
	return Success
}

func (f *fakeNative) nvmlGpmSampleFree(sample nvmlGpmSample) Return {
	f.record("nvmlGpmSampleFree")
	if f.gpmFreeFn != nil {
		return f.gpmFreeFn(sample)
	}
	return Success
}

func (f *fakeNative) nvmlGpmSampleGet(device nvmlDevice, sample nvmlGpmSample) Return {
	f.record("nvmlGpmSampleGet")
	if f.gpmGetFn != nil {
		return f.gpmGetFn(device, sample)
	}
	return Success
}

func (f *fakeNative) nvmlGpmQueryDeviceSupport(device nvmlDevice, support *nvmlGpmSupport) Return {
	f.record("nvmlGpmQueryDeviceSupport")
	if f.gpmSupportFn != nil {
		return f.gpmSupportFn(device, support)
	}
	return Success
}

func (f *fakeNative) nvmlGpmMetricsGet(metrics *nvmlGpmMetricsGetType) Return {
	f.record("nvmlGpmMetricsGet")
	if f.gpmMetricsFn != nil {
		return f.gpmMetricsFn(metrics)
	}
	return Success
}

// cbytes views a native buffer pointer as a byte slice of the given
// capacity.
func cbytes(buf *byte, length uint32) []byte {
	return unsafe.Slice(buf, int(length))
}

// fillList copies src into the native output array at dst, which the
// caller sized to n elements.
func fillList[T any](dst *T, n uint32, src []T) {
	if dst == nil || n == 0 {
		return
	}
	copy(unsafe.Slice(dst, int(n)), src)
}

// writeCString copies s and a trailing NUL into the fixed native buffer
// at buf.
func writeCString(buf *byte, length uint32, s string) {
	out := cbytes(buf, length)
	n := copy(out, s)
	if n < len(out) {
		out[n] = 0
	} else if len(out) > 0 {
		out[len(out)-1] = 0
	}
}

// allSymbols returns the symbol list of a driver exporting every entry
// point this package knows, newest variants included.
func allSymbols() []string {
	syms := make([]string, 0, 3*len(operations))
	for _, op := range operations {
		for _, v := range op.variants {
			syms = append(syms, op.name+v.suffix)
		}
	}
	return syms
}
