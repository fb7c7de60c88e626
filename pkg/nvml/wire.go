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

// Wire-format structs matching the C layouts the native entry points
// read and write. Field order, widths, and fixed buffer sizes are ABI;
// do not reorder. Each ABI revision of a struct is a distinct type with
// its own decoder, keyed by the variant the resolver selected. There is
// no shared over-general struct.

// Fixed native buffer sizes.
const (
	systemDriverVersionBufferSize = 80
	systemNVMLVersionBufferSize   = 80
	deviceNameBufferSize          = 96
	deviceUUIDBufferSize          = 96
	pciBusIdBufferSize            = 32
	pciBusIdLegacyBufferSize      = 16
	vgpuNameBufferSize            = 64
	vgpuUUIDBufferSize            = 80
	vgpuVmIDBufferSize            = 80
)

// Versioned-struct tags, computed the way the C headers do: struct size
// in the low bytes, ABI revision in the top byte.
var (
	nvmlMemoryV2Version      = uint32(unsafe.Sizeof(nvmlMemoryV2{})) | 2<<24
	nvmlGpmSupportVersion    = uint32(unsafe.Sizeof(nvmlGpmSupport{})) | 1<<24
	nvmlGpmMetricsGetVersion = uint32(unsafe.Sizeof(nvmlGpmMetricsGetType{})) | 1<<24
)

// nvmlMemory mirrors the original nvmlMemory_t.
type nvmlMemory struct {
	Total uint64
	Free  uint64
	Used  uint64
}

// nvmlMemoryV2 mirrors nvmlMemory_v2_t. Version must be populated before
// the call; the native side rejects mismatched tags.
type nvmlMemoryV2 struct {
	Version  uint32
	Total    uint64
	Reserved uint64
	Free     uint64
	Used     uint64
}

// nvmlPciInfoLegacy mirrors the pre-v3 nvmlPciInfo_t with the 16-byte
// bus id buffer.
type nvmlPciInfoLegacy struct {
	BusId          [pciBusIdLegacyBufferSize]byte
	Domain         uint32
	Bus            uint32
	Device         uint32
	PciDeviceId    uint32
	PciSubSystemId uint32
	Reserved       [4]uint32
}

// nvmlPciInfoV3 mirrors the current nvmlPciInfo_t: the 16-byte buffer
// was demoted to a legacy field and a 32-byte buffer appended.
type nvmlPciInfoV3 struct {
	BusIdLegacy    [pciBusIdLegacyBufferSize]byte
	Domain         uint32
	Bus            uint32
	Device         uint32
	PciDeviceId    uint32
	PciSubSystemId uint32
	BusId          [pciBusIdBufferSize]byte
}

// nvmlUtilization mirrors nvmlUtilization_t.
type nvmlUtilization struct {
	Gpu    uint32
	Memory uint32
}

// Per-variant process info layouts. v2 appended the MIG instance ids,
// v3 appended the confidential-compute memory counter.
type nvmlProcessInfoV1 struct {
	Pid           uint32
	UsedGpuMemory uint64
}

type nvmlProcessInfoV2 struct {
	Pid               uint32
	UsedGpuMemory     uint64
	GpuInstanceId     uint32
	ComputeInstanceId uint32
}

type nvmlProcessInfoV3 struct {
	Pid                      uint32
	UsedGpuMemory            uint64
	GpuInstanceId            uint32
	ComputeInstanceId        uint32
	UsedGpuCcProtectedMemory uint64
}

// nvmlGpuInstanceProfileInfo mirrors nvmlGpuInstanceProfileInfo_t.
type nvmlGpuInstanceProfileInfo struct {
	Id                  uint32
	IsP2pSupported      uint32
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

// nvmlGpuInstancePlacement mirrors nvmlGpuInstancePlacement_t.
type nvmlGpuInstancePlacement struct {
	Start uint32
	Size  uint32
}

// nvmlGpuInstanceInfo mirrors nvmlGpuInstanceInfo_t.
type nvmlGpuInstanceInfo struct {
	Device    nvmlDevice
	Id        uint32
	ProfileId uint32
	Placement nvmlGpuInstancePlacement
}

// nvmlComputeInstancePlacement mirrors nvmlComputeInstancePlacement_t.
type nvmlComputeInstancePlacement struct {
	Start uint32
	Size  uint32
}

// nvmlComputeInstanceInfo mirrors nvmlComputeInstanceInfo_t.
type nvmlComputeInstanceInfo struct {
	Device      nvmlDevice
	GpuInstance nvmlGpuInstance
	Id          uint32
	ProfileId   uint32
	Placement   nvmlComputeInstancePlacement
}

// Per-variant event data layouts. v2 appended the MIG instance ids.
type nvmlEventDataV1 struct {
	Device    nvmlDevice
	EventType uint64
	EventData uint64
}

type nvmlEventDataV2 struct {
	Device            nvmlDevice
	EventType         uint64
	EventData         uint64
	GpuInstanceId     uint32
	ComputeInstanceId uint32
}

// nvmlGpmSupport mirrors nvmlGpmSupport_t.
type nvmlGpmSupport struct {
	Version           uint32
	IsSupportedDevice uint32
}

// gpmMetricMax is NVML_GPM_METRIC_MAX, the capacity of the metrics
// array in nvmlGpmMetricsGet_t.
const gpmMetricMax = 98

// nvmlGpmMetricMetricInfo mirrors nvmlGpmMetricMetricInfo_t. The names
// point into driver-owned storage and are not copied out.
type nvmlGpmMetricMetricInfo struct {
	ShortName unsafe.Pointer
	LongName  unsafe.Pointer
	Unit      unsafe.Pointer
}

// nvmlGpmMetric mirrors nvmlGpmMetric_t.
type nvmlGpmMetric struct {
	MetricId   uint32
	NvmlReturn Return
	Value      float64
	MetricInfo nvmlGpmMetricMetricInfo
}

// nvmlGpmMetricsGetType mirrors nvmlGpmMetricsGet_t.
type nvmlGpmMetricsGetType struct {
	Version    uint32
	NumMetrics uint32
	Sample1    nvmlGpmSample
	Sample2    nvmlGpmSample
	Metrics    [gpmMetricMax]nvmlGpmMetric
}

// clen returns the length of the C string in b: the index of the first
// NUL, or len(b) when none is present.
func clen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}

// cstr copies the NUL-terminated contents of a fixed native buffer into
// an owned Go string.
func cstr(b []byte) string {
	return string(b[:clen(b)])
}

// Decoders. Each decoder corresponds to exactly one wire layout and is
// invoked only when the resolver selected the matching variant.

func decodeMemory(m *nvmlMemory) MemoryInfo {
	return MemoryInfo{Total: m.Total, Free: m.Free, Used: m.Used}
}

func decodeMemoryV2(m *nvmlMemoryV2) MemoryInfo {
	return MemoryInfo{Total: m.Total, Free: m.Free, Used: m.Used, Reserved: m.Reserved}
}

func decodePciInfoLegacy(p *nvmlPciInfoLegacy) PciInfo {
	return PciInfo{
		BusID:          cstr(p.BusId[:]),
		Domain:         p.Domain,
		Bus:            p.Bus,
		Device:         p.Device,
		PciDeviceID:    p.PciDeviceId,
		PciSubSystemID: p.PciSubSystemId,
	}
}

func decodePciInfoV3(p *nvmlPciInfoV3) PciInfo {
	return PciInfo{
		BusID:          cstr(p.BusId[:]),
		Domain:         p.Domain,
		Bus:            p.Bus,
		Device:         p.Device,
		PciDeviceID:    p.PciDeviceId,
		PciSubSystemID: p.PciSubSystemId,
	}
}

// Encoders for the round trip back into native layouts. A bus id that
// does not fit the variant's buffer (including its NUL terminator) is an
// invalid argument, not a truncation.

func encodePciInfoLegacy(op string, info PciInfo) (nvmlPciInfoLegacy, error) {
	var out nvmlPciInfoLegacy
	if len(info.BusID) >= pciBusIdLegacyBufferSize {
		return out, errInvalidArgument(op)
	}
	copy(out.BusId[:], info.BusID)
	out.Domain = info.Domain
	out.Bus = info.Bus
	out.Device = info.Device
	out.PciDeviceId = info.PciDeviceID
	out.PciSubSystemId = info.PciSubSystemID
	return out, nil
}

func encodePciInfoV3(op string, info PciInfo) (nvmlPciInfoV3, error) {
	var out nvmlPciInfoV3
	if len(info.BusID) >= pciBusIdBufferSize {
		return out, errInvalidArgument(op)
	}
	copy(out.BusId[:], info.BusID)
	if len(info.BusID) < pciBusIdLegacyBufferSize {
		copy(out.BusIdLegacy[:], info.BusID)
	}
	out.Domain = info.Domain
	out.Bus = info.Bus
	out.Device = info.Device
	out.PciDeviceId = info.PciDeviceID
	out.PciSubSystemId = info.PciSubSystemID
	return out, nil
}

func decodeProcessInfoV1(in []nvmlProcessInfoV1) []ProcessInfo {
	out := make([]ProcessInfo, len(in))
	for i, p := range in {
		out[i] = ProcessInfo{
			Pid:               p.Pid,
			UsedGpuMemory:     p.UsedGpuMemory,
			GpuInstanceID:     NoMigInstanceID,
			ComputeInstanceID: NoMigInstanceID,
		}
	}
	return out
}

func decodeProcessInfoV2(in []nvmlProcessInfoV2) []ProcessInfo {
	out := make([]ProcessInfo, len(in))
	for i, p := range in {
		out[i] = ProcessInfo{
			Pid:               p.Pid,
			UsedGpuMemory:     p.UsedGpuMemory,
			GpuInstanceID:     p.GpuInstanceId,
			ComputeInstanceID: p.ComputeInstanceId,
		}
	}
	return out
}

func decodeProcessInfoV3(in []nvmlProcessInfoV3) []ProcessInfo {
	out := make([]ProcessInfo, len(in))
	for i, p := range in {
		out[i] = ProcessInfo{
			Pid:                      p.Pid,
			UsedGpuMemory:            p.UsedGpuMemory,
			GpuInstanceID:            p.GpuInstanceId,
			ComputeInstanceID:        p.ComputeInstanceId,
			UsedGpuCcProtectedMemory: p.UsedGpuCcProtectedMemory,
		}
	}
	return out
}

func decodeEventDataV1(d *nvmlEventDataV1) EventData {
	return EventData{
		EventType:         d.EventType,
		EventData:         d.EventData,
		GpuInstanceID:     NoMigInstanceID,
		ComputeInstanceID: NoMigInstanceID,
	}
}

func decodeEventDataV2(d *nvmlEventDataV2) EventData {
	return EventData{
		EventType:         d.EventType,
		EventData:         d.EventData,
		GpuInstanceID:     d.GpuInstanceId,
		ComputeInstanceID: d.ComputeInstanceId,
	}
}

func decodeGpuInstanceProfileInfo(p *nvmlGpuInstanceProfileInfo) GpuInstanceProfileInfo {
	return GpuInstanceProfileInfo{
		ID:                  p.Id,
		IsP2pSupported:      p.IsP2pSupported != 0,
		SliceCount:          p.SliceCount,
		InstanceCount:       p.InstanceCount,
		MultiprocessorCount: p.MultiprocessorCount,
		CopyEngineCount:     p.CopyEngineCount,
		DecoderCount:        p.DecoderCount,
		EncoderCount:        p.EncoderCount,
		JpegCount:           p.JpegCount,
		OfaCount:            p.OfaCount,
		MemorySizeMB:        p.MemorySizeMB,
	}
}
