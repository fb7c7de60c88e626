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

// Public result types. Every value is fully owned by the caller: strings
// and slices are copied out of native memory before the wrapping call
// returns, and no field aliases library-owned storage.

// NoMigInstanceID marks a process or event not attributed to a MIG
// instance, and is also what drivers predating MIG-aware layouts report.
const NoMigInstanceID uint32 = 0xFFFFFFFF

// MemoryInfo describes the framebuffer memory of a device, in bytes.
// Reserved is only reported by drivers exporting the versioned memory
// query; older drivers leave it zero.
type MemoryInfo struct {
	Total    uint64
	Free     uint64
	Used     uint64
	Reserved uint64
}

// PciInfo describes the PCI identity of a device.
type PciInfo struct {
	// BusID is the tuple domain:bus:device.function in the canonical
	// zero-padded hexadecimal form.
	BusID string

	Domain uint32
	Bus    uint32
	Device uint32

	// PciDeviceID is the combined 16-bit device id and 16-bit vendor id.
	PciDeviceID uint32

	// PciSubSystemID is the 32-bit subsystem device id.
	PciSubSystemID uint32
}

// Utilization holds device utilization rates over the last sampling
// window, in percent.
type Utilization struct {
	Gpu    uint32
	Memory uint32
}

// ProcessInfo describes one process with a compute context on a device.
// GpuInstanceID and ComputeInstanceID are NoMigInstanceID unless the
// process runs on a MIG instance and the driver reports MIG-aware
// process layouts. UsedGpuCcProtectedMemory requires a driver exporting
// the v3 process query.
type ProcessInfo struct {
	Pid                      uint32
	UsedGpuMemory            uint64
	GpuInstanceID            uint32
	ComputeInstanceID        uint32
	UsedGpuCcProtectedMemory uint64
}

// TemperatureSensor identifies a thermal sensor on a device.
type TemperatureSensor uint32

// TemperatureGpu is the on-die GPU sensor.
const TemperatureGpu TemperatureSensor = 0

// MigMode is the MIG operation mode of a device.
type MigMode uint32

const (
	MigDisabled MigMode = 0
	MigEnabled  MigMode = 1
)

// GpuInstanceProfileID identifies a canonical GPU instance profile.
type GpuInstanceProfileID uint32

// Canonical GPU instance profiles.
const (
	GpuInstanceProfile1Slice GpuInstanceProfileID = 0
	GpuInstanceProfile2Slice GpuInstanceProfileID = 1
	GpuInstanceProfile3Slice GpuInstanceProfileID = 2
	GpuInstanceProfile4Slice GpuInstanceProfileID = 3
	GpuInstanceProfile7Slice GpuInstanceProfileID = 4
	GpuInstanceProfile8Slice GpuInstanceProfileID = 5
	GpuInstanceProfile6Slice GpuInstanceProfileID = 6
)

// GpuInstanceProfileInfo describes the capacity of one GPU instance
// profile on a device.
type GpuInstanceProfileInfo struct {
	ID                  uint32
	IsP2pSupported      bool
	SliceCount          uint32
	InstanceCount       uint32
	MultiprocessorCount uint32
	CopyEngineCount     uint32
	DecoderCount        uint32
	EncoderCount        uint32
	JpegCount           uint32
	OfaCount            uint32
	MemorySizeMB        uint64
}

// Placement describes where an instance sits on its parent, in slices.
type Placement struct {
	Start uint32
	Size  uint32
}

// GpuInstanceInfo describes a created GPU instance.
type GpuInstanceInfo struct {
	ID        uint32
	ProfileID uint32
	Placement Placement
}

// ComputeInstanceInfo describes a created compute instance.
type ComputeInstanceInfo struct {
	ID        uint32
	ProfileID uint32
	Placement Placement
}

// PersistenceMode selects whether the driver stays loaded while no
// client holds the device.
type PersistenceMode uint32

const (
	PersistenceDisabled PersistenceMode = 0
	PersistenceEnabled  PersistenceMode = 1
)

// Event type bits for Device.RegisterEvents.
const (
	EventTypeSingleBitEccError uint64 = 1 << 0
	EventTypeDoubleBitEccError uint64 = 1 << 1
	EventTypePState            uint64 = 1 << 2
	EventTypeXidCriticalError  uint64 = 1 << 3
	EventTypeClock             uint64 = 1 << 4
	EventTypePowerSourceChange uint64 = 1 << 7
)

// EventData is one event delivered by EventSet.Wait. The MIG instance
// ids are NoMigInstanceID unless the driver exports the v2 wait and the
// event originated on a MIG instance.
type EventData struct {
	EventType         uint64
	EventData         uint64
	GpuInstanceID     uint32
	ComputeInstanceID uint32
}

// VgpuVmIDType discriminates the hypervisor VM identifier format.
type VgpuVmIDType uint32

const (
	VgpuVmIDDomainID VgpuVmIDType = 0
	VgpuVmIDUUID     VgpuVmIDType = 1
)
