//go:build linux && cgo

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

/*
#include <stdlib.h>

// Generic trampolines for entry points resolved at runtime with dlsym.
// Every NVML function returns an int status code; the argument shapes
// below cover the full call surface. Letters encode the argument kinds:
// u = unsigned int, p = void pointer, q = unsigned long long.

typedef int (*fn_0)(void);
typedef int (*fn_u)(unsigned int);
typedef int (*fn_p)(void *);
typedef int (*fn_pu)(void *, unsigned int);
typedef int (*fn_up)(unsigned int, void *);
typedef int (*fn_pp)(void *, void *);
typedef int (*fn_ppp)(void *, void *, void *);
typedef int (*fn_ppu)(void *, void *, unsigned int);
typedef int (*fn_pup)(void *, unsigned int, void *);
typedef int (*fn_upp)(unsigned int, void *, void *);
typedef int (*fn_upu)(unsigned int, void *, unsigned int);
typedef int (*fn_pqp)(void *, unsigned long long, void *);
typedef int (*fn_pupp)(void *, unsigned int, void *, void *);
typedef int (*fn_upup)(unsigned int, void *, unsigned int, void *);

static int call_0(void *f) { return ((fn_0)f)(); }
static int call_u(void *f, unsigned int a) { return ((fn_u)f)(a); }
static int call_p(void *f, void *a) { return ((fn_p)f)(a); }
static int call_pu(void *f, void *a, unsigned int b) { return ((fn_pu)f)(a, b); }
static int call_up(void *f, unsigned int a, void *b) { return ((fn_up)f)(a, b); }
static int call_pp(void *f, void *a, void *b) { return ((fn_pp)f)(a, b); }
static int call_ppp(void *f, void *a, void *b, void *c) { return ((fn_ppp)f)(a, b, c); }
static int call_ppu(void *f, void *a, void *b, unsigned int c) { return ((fn_ppu)f)(a, b, c); }
static int call_pup(void *f, void *a, unsigned int b, void *c) { return ((fn_pup)f)(a, b, c); }
static int call_upp(void *f, unsigned int a, void *b, void *c) { return ((fn_upp)f)(a, b, c); }
static int call_upu(void *f, unsigned int a, void *b, unsigned int c) { return ((fn_upu)f)(a, b, c); }
static int call_pqp(void *f, void *a, unsigned long long b, void *c) { return ((fn_pqp)f)(a, b, c); }
static int call_pupp(void *f, void *a, unsigned int b, void *c, void *d) { return ((fn_pupp)f)(a, b, c, d); }
static int call_upup(void *f, unsigned int a, void *b, unsigned int c, void *d) { return ((fn_upup)f)(a, b, c, d); }
*/
import "C"

import (
	"sync"
	"unsafe"

	"nvml-guard/pkg/dl"
)

// dynamicNative dispatches nativeLib calls through entry points resolved
// from the shared library at runtime. Symbol addresses are cached on
// first lookup; the version resolver performs that lookup before any
// wrapper dispatches through the matching method.
type dynamicNative struct {
	lib *dl.Lib

	mu   sync.Mutex
	syms map[string]unsafe.Pointer
}

var _ nativeLib = (*dynamicNative)(nil)

// openNative loads the shared library at path. Symbols are bound
// lazily; presence of individual entry points is checked per operation
// during version resolution.
func openNative(path string) (nativeLib, error) {
	lib, err := dl.Open(path, dl.Lazy|dl.Global)
	if err != nil {
		return nil, err
	}
	return &dynamicNative{lib: lib, syms: make(map[string]unsafe.Pointer)}, nil
}

func (n *dynamicNative) lookup(symbol string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.syms[symbol]; ok {
		return nil
	}
	ptr, err := n.lib.Lookup(symbol)
	if err != nil {
		return err
	}
	n.syms[symbol] = ptr
	return nil
}

func (n *dynamicNative) close() error {
	return n.lib.Close()
}

// sym returns the cached address of a symbol the resolver has already
// confirmed present. A miss means a wrapper dispatched without
// resolution, which the Return value makes visible instead of crashing.
func (n *dynamicNative) sym(symbol string) (unsafe.Pointer, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	ptr, ok := n.syms[symbol]
	return ptr, ok
}

func (n *dynamicNative) call0(symbol string) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_0(f))
}

func (n *dynamicNative) callU(symbol string, a uint32) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_u(f, C.uint(a)))
}

func (n *dynamicNative) callP(symbol string, a unsafe.Pointer) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_p(f, a))
}

func (n *dynamicNative) callPU(symbol string, a unsafe.Pointer, b uint32) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_pu(f, a, C.uint(b)))
}

func (n *dynamicNative) callUP(symbol string, a uint32, b unsafe.Pointer) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_up(f, C.uint(a), b))
}

func (n *dynamicNative) callPP(symbol string, a, b unsafe.Pointer) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_pp(f, a, b))
}

func (n *dynamicNative) callPPP(symbol string, a, b, c unsafe.Pointer) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_ppp(f, a, b, c))
}

func (n *dynamicNative) callPPU(symbol string, a, b unsafe.Pointer, c uint32) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_ppu(f, a, b, C.uint(c)))
}

func (n *dynamicNative) callPUP(symbol string, a unsafe.Pointer, b uint32, c unsafe.Pointer) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_pup(f, a, C.uint(b), c))
}

func (n *dynamicNative) callUPP(symbol string, a uint32, b, c unsafe.Pointer) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_upp(f, C.uint(a), b, c))
}

func (n *dynamicNative) callUPU(symbol string, a uint32, b unsafe.Pointer, c uint32) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_upu(f, C.uint(a), b, C.uint(c)))
}

func (n *dynamicNative) callPQP(symbol string, a unsafe.Pointer, b uint64, c unsafe.Pointer) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_pqp(f, a, C.ulonglong(b), c))
}

func (n *dynamicNative) callPUPP(symbol string, a unsafe.Pointer, b uint32, c, d unsafe.Pointer) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_pupp(f, a, C.uint(b), c, d))
}

func (n *dynamicNative) callUPUP(symbol string, a uint32, b unsafe.Pointer, c uint32, d unsafe.Pointer) Return {
	f, ok := n.sym(symbol)
	if !ok {
		return ErrorFunctionNotFound
	}
	return Return(C.call_upup(f, C.uint(a), b, C.uint(c), d))
}

// withCString runs fn with a C copy of s and frees it afterwards.
func withCString(s string, fn func(unsafe.Pointer) Return) Return {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return fn(unsafe.Pointer(cs))
}

func (n *dynamicNative) nvmlInit_v2() Return { return n.call0("nvmlInit_v2") }
func (n *dynamicNative) nvmlInit() Return    { return n.call0("nvmlInit") }
func (n *dynamicNative) nvmlInitWithFlags(flags uint32) Return {
	return n.callU("nvmlInitWithFlags", flags)
}
func (n *dynamicNative) nvmlShutdown() Return { return n.call0("nvmlShutdown") }

func (n *dynamicNative) nvmlSystemGetDriverVersion(buf *byte, length uint32) Return {
	return n.callPU("nvmlSystemGetDriverVersion", unsafe.Pointer(buf), length)
}
func (n *dynamicNative) nvmlSystemGetNVMLVersion(buf *byte, length uint32) Return {
	return n.callPU("nvmlSystemGetNVMLVersion", unsafe.Pointer(buf), length)
}
func (n *dynamicNative) nvmlSystemGetCudaDriverVersion_v2(version *int32) Return {
	return n.callP("nvmlSystemGetCudaDriverVersion_v2", unsafe.Pointer(version))
}
func (n *dynamicNative) nvmlSystemGetCudaDriverVersion(version *int32) Return {
	return n.callP("nvmlSystemGetCudaDriverVersion", unsafe.Pointer(version))
}

func (n *dynamicNative) nvmlDeviceGetCount_v2(count *uint32) Return {
	return n.callP("nvmlDeviceGetCount_v2", unsafe.Pointer(count))
}
func (n *dynamicNative) nvmlDeviceGetCount(count *uint32) Return {
	return n.callP("nvmlDeviceGetCount", unsafe.Pointer(count))
}
func (n *dynamicNative) nvmlDeviceGetHandleByIndex_v2(index uint32, device *nvmlDevice) Return {
	return n.callUP("nvmlDeviceGetHandleByIndex_v2", index, unsafe.Pointer(device))
}
func (n *dynamicNative) nvmlDeviceGetHandleByIndex(index uint32, device *nvmlDevice) Return {
	return n.callUP("nvmlDeviceGetHandleByIndex", index, unsafe.Pointer(device))
}
func (n *dynamicNative) nvmlDeviceGetHandleByUUID(uuid string, device *nvmlDevice) Return {
	return withCString(uuid, func(cs unsafe.Pointer) Return {
		return n.callPP("nvmlDeviceGetHandleByUUID", cs, unsafe.Pointer(device))
	})
}
func (n *dynamicNative) nvmlDeviceGetHandleByPciBusId_v2(busID string, device *nvmlDevice) Return {
	return withCString(busID, func(cs unsafe.Pointer) Return {
		return n.callPP("nvmlDeviceGetHandleByPciBusId_v2", cs, unsafe.Pointer(device))
	})
}
func (n *dynamicNative) nvmlDeviceGetHandleByPciBusId(busID string, device *nvmlDevice) Return {
	return withCString(busID, func(cs unsafe.Pointer) Return {
		return n.callPP("nvmlDeviceGetHandleByPciBusId", cs, unsafe.Pointer(device))
	})
}

func (n *dynamicNative) nvmlDeviceGetName(device nvmlDevice, buf *byte, length uint32) Return {
	return n.callPPU("nvmlDeviceGetName", unsafe.Pointer(device), unsafe.Pointer(buf), length)
}
func (n *dynamicNative) nvmlDeviceGetUUID(device nvmlDevice, buf *byte, length uint32) Return {
	return n.callPPU("nvmlDeviceGetUUID", unsafe.Pointer(device), unsafe.Pointer(buf), length)
}
func (n *dynamicNative) nvmlDeviceGetIndex(device nvmlDevice, index *uint32) Return {
	return n.callPP("nvmlDeviceGetIndex", unsafe.Pointer(device), unsafe.Pointer(index))
}
func (n *dynamicNative) nvmlDeviceGetMemoryInfo_v2(device nvmlDevice, mem *nvmlMemoryV2) Return {
	return n.callPP("nvmlDeviceGetMemoryInfo_v2", unsafe.Pointer(device), unsafe.Pointer(mem))
}
func (n *dynamicNative) nvmlDeviceGetMemoryInfo(device nvmlDevice, mem *nvmlMemory) Return {
	return n.callPP("nvmlDeviceGetMemoryInfo", unsafe.Pointer(device), unsafe.Pointer(mem))
}
func (n *dynamicNative) nvmlDeviceGetPciInfo_v3(device nvmlDevice, pci *nvmlPciInfoV3) Return {
	return n.callPP("nvmlDeviceGetPciInfo_v3", unsafe.Pointer(device), unsafe.Pointer(pci))
}
func (n *dynamicNative) nvmlDeviceGetPciInfo_v2(device nvmlDevice, pci *nvmlPciInfoLegacy) Return {
	return n.callPP("nvmlDeviceGetPciInfo_v2", unsafe.Pointer(device), unsafe.Pointer(pci))
}
func (n *dynamicNative) nvmlDeviceGetPciInfo(device nvmlDevice, pci *nvmlPciInfoLegacy) Return {
	return n.callPP("nvmlDeviceGetPciInfo", unsafe.Pointer(device), unsafe.Pointer(pci))
}
func (n *dynamicNative) nvmlDeviceGetUtilizationRates(device nvmlDevice, util *nvmlUtilization) Return {
	return n.callPP("nvmlDeviceGetUtilizationRates", unsafe.Pointer(device), unsafe.Pointer(util))
}
func (n *dynamicNative) nvmlDeviceGetTemperature(device nvmlDevice, sensor uint32, temp *uint32) Return {
	return n.callPUP("nvmlDeviceGetTemperature", unsafe.Pointer(device), sensor, unsafe.Pointer(temp))
}
func (n *dynamicNative) nvmlDeviceGetPowerUsage(device nvmlDevice, milliwatts *uint32) Return {
	return n.callPP("nvmlDeviceGetPowerUsage", unsafe.Pointer(device), unsafe.Pointer(milliwatts))
}
func (n *dynamicNative) nvmlDeviceGetComputeRunningProcesses_v3(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV3) Return {
	return n.callPPP("nvmlDeviceGetComputeRunningProcesses_v3", unsafe.Pointer(device), unsafe.Pointer(count), unsafe.Pointer(infos))
}
func (n *dynamicNative) nvmlDeviceGetComputeRunningProcesses_v2(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV2) Return {
	return n.callPPP("nvmlDeviceGetComputeRunningProcesses_v2", unsafe.Pointer(device), unsafe.Pointer(count), unsafe.Pointer(infos))
}
func (n *dynamicNative) nvmlDeviceGetComputeRunningProcesses(device nvmlDevice, count *uint32, infos *nvmlProcessInfoV1) Return {
	return n.callPPP("nvmlDeviceGetComputeRunningProcesses", unsafe.Pointer(device), unsafe.Pointer(count), unsafe.Pointer(infos))
}
func (n *dynamicNative) nvmlDeviceSetPersistenceMode(device nvmlDevice, mode uint32) Return {
	return n.callPU("nvmlDeviceSetPersistenceMode", unsafe.Pointer(device), mode)
}
func (n *dynamicNative) nvmlDeviceClearAccountingPids(device nvmlDevice) Return {
	return n.callP("nvmlDeviceClearAccountingPids", unsafe.Pointer(device))
}

func (n *dynamicNative) nvmlDeviceGetMigMode(device nvmlDevice, current, pending *uint32) Return {
	return n.callPPP("nvmlDeviceGetMigMode", unsafe.Pointer(device), unsafe.Pointer(current), unsafe.Pointer(pending))
}
func (n *dynamicNative) nvmlDeviceSetMigMode(device nvmlDevice, mode uint32, activationStatus *Return) Return {
	return n.callPUP("nvmlDeviceSetMigMode", unsafe.Pointer(device), mode, unsafe.Pointer(activationStatus))
}
func (n *dynamicNative) nvmlDeviceGetGpuInstanceProfileInfo(device nvmlDevice, profile uint32, info *nvmlGpuInstanceProfileInfo) Return {
	return n.callPUP("nvmlDeviceGetGpuInstanceProfileInfo", unsafe.Pointer(device), profile, unsafe.Pointer(info))
}
func (n *dynamicNative) nvmlDeviceCreateGpuInstance(device nvmlDevice, profileID uint32, gi *nvmlGpuInstance) Return {
	return n.callPUP("nvmlDeviceCreateGpuInstance", unsafe.Pointer(device), profileID, unsafe.Pointer(gi))
}
func (n *dynamicNative) nvmlGpuInstanceGetInfo(gi nvmlGpuInstance, info *nvmlGpuInstanceInfo) Return {
	return n.callPP("nvmlGpuInstanceGetInfo", unsafe.Pointer(gi), unsafe.Pointer(info))
}
func (n *dynamicNative) nvmlGpuInstanceDestroy(gi nvmlGpuInstance) Return {
	return n.callP("nvmlGpuInstanceDestroy", unsafe.Pointer(gi))
}
func (n *dynamicNative) nvmlGpuInstanceCreateComputeInstance(gi nvmlGpuInstance, profileID uint32, ci *nvmlComputeInstance) Return {
	return n.callPUP("nvmlGpuInstanceCreateComputeInstance", unsafe.Pointer(gi), profileID, unsafe.Pointer(ci))
}
func (n *dynamicNative) nvmlGpuInstanceGetComputeInstances(gi nvmlGpuInstance, profileID uint32, cis *nvmlComputeInstance, count *uint32) Return {
	return n.callPUPP("nvmlGpuInstanceGetComputeInstances", unsafe.Pointer(gi), profileID, unsafe.Pointer(cis), unsafe.Pointer(count))
}
func (n *dynamicNative) nvmlComputeInstanceGetInfo_v2(ci nvmlComputeInstance, info *nvmlComputeInstanceInfo) Return {
	return n.callPP("nvmlComputeInstanceGetInfo_v2", unsafe.Pointer(ci), unsafe.Pointer(info))
}
func (n *dynamicNative) nvmlComputeInstanceGetInfo(ci nvmlComputeInstance, info *nvmlComputeInstanceInfo) Return {
	return n.callPP("nvmlComputeInstanceGetInfo", unsafe.Pointer(ci), unsafe.Pointer(info))
}
func (n *dynamicNative) nvmlComputeInstanceDestroy(ci nvmlComputeInstance) Return {
	return n.callP("nvmlComputeInstanceDestroy", unsafe.Pointer(ci))
}

func (n *dynamicNative) nvmlDeviceGetSupportedVgpus(device nvmlDevice, count *uint32, typeIDs *nvmlVgpuTypeId) Return {
	return n.callPPP("nvmlDeviceGetSupportedVgpus", unsafe.Pointer(device), unsafe.Pointer(count), unsafe.Pointer(typeIDs))
}
func (n *dynamicNative) nvmlDeviceGetCreatableVgpus(device nvmlDevice, count *uint32, typeIDs *nvmlVgpuTypeId) Return {
	return n.callPPP("nvmlDeviceGetCreatableVgpus", unsafe.Pointer(device), unsafe.Pointer(count), unsafe.Pointer(typeIDs))
}
func (n *dynamicNative) nvmlVgpuTypeGetName(typeID nvmlVgpuTypeId, buf *byte, size *uint32) Return {
	return n.callUPP("nvmlVgpuTypeGetName", uint32(typeID), unsafe.Pointer(buf), unsafe.Pointer(size))
}
func (n *dynamicNative) nvmlVgpuTypeGetMaxInstances(device nvmlDevice, typeID nvmlVgpuTypeId, count *uint32) Return {
	return n.callPUP("nvmlVgpuTypeGetMaxInstances", unsafe.Pointer(device), uint32(typeID), unsafe.Pointer(count))
}
func (n *dynamicNative) nvmlDeviceGetActiveVgpus(device nvmlDevice, count *uint32, instances *nvmlVgpuInstance) Return {
	return n.callPPP("nvmlDeviceGetActiveVgpus", unsafe.Pointer(device), unsafe.Pointer(count), unsafe.Pointer(instances))
}
func (n *dynamicNative) nvmlVgpuInstanceGetUUID(instance nvmlVgpuInstance, buf *byte, size uint32) Return {
	return n.callUPU("nvmlVgpuInstanceGetUUID", uint32(instance), unsafe.Pointer(buf), size)
}
func (n *dynamicNative) nvmlVgpuInstanceGetVmID(instance nvmlVgpuInstance, buf *byte, size uint32, idType *uint32) Return {
	return n.callUPUP("nvmlVgpuInstanceGetVmID", uint32(instance), unsafe.Pointer(buf), size, unsafe.Pointer(idType))
}

func (n *dynamicNative) nvmlEventSetCreate(set *nvmlEventSet) Return {
	return n.callP("nvmlEventSetCreate", unsafe.Pointer(set))
}
func (n *dynamicNative) nvmlDeviceRegisterEvents(device nvmlDevice, eventTypes uint64, set nvmlEventSet) Return {
	return n.callPQP("nvmlDeviceRegisterEvents", unsafe.Pointer(device), eventTypes, unsafe.Pointer(set))
}
func (n *dynamicNative) nvmlEventSetWait_v2(set nvmlEventSet, data *nvmlEventDataV2, timeoutMs uint32) Return {
	return n.callPPU("nvmlEventSetWait_v2", unsafe.Pointer(set), unsafe.Pointer(data), timeoutMs)
}
func (n *dynamicNative) nvmlEventSetWait(set nvmlEventSet, data *nvmlEventDataV1, timeoutMs uint32) Return {
	return n.callPPU("nvmlEventSetWait", unsafe.Pointer(set), unsafe.Pointer(data), timeoutMs)
}
func (n *dynamicNative) nvmlEventSetFree(set nvmlEventSet) Return {
	return n.callP("nvmlEventSetFree", unsafe.Pointer(set))
}

func (n *dynamicNative) nvmlGpmSampleAlloc(sample *nvmlGpmSample) Return {
	return n.callP("nvmlGpmSampleAlloc", unsafe.Pointer(sample))
}
func (n *dynamicNative) nvmlGpmSampleFree(sample nvmlGpmSample) Return {
	return n.callP("nvmlGpmSampleFree", unsafe.Pointer(sample))
}
func (n *dynamicNative) nvmlGpmSampleGet(device nvmlDevice, sample nvmlGpmSample) Return {
	return n.callPP("nvmlGpmSampleGet", unsafe.Pointer(device), unsafe.Pointer(sample))
}
func (n *dynamicNative) nvmlGpmQueryDeviceSupport(device nvmlDevice, support *nvmlGpmSupport) Return {
	return n.callPP("nvmlGpmQueryDeviceSupport", unsafe.Pointer(device), unsafe.Pointer(support))
}
func (n *dynamicNative) nvmlGpmMetricsGet(metrics *nvmlGpmMetricsGetType) Return {
	return n.callP("nvmlGpmMetricsGet", unsafe.Pointer(metrics))
}
