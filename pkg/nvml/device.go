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

// Device is an opaque, copyable reference to one GPU. It does not own
// the underlying device object; its validity is scoped to the Library
// it was obtained from. Queries reflect a fresh native call on every
// invocation; nothing is cached across calls.
type Device struct {
	lib *Library
	dev nvmlDevice
}

// DeviceCount returns the number of devices the driver manages.
func (l *Library) DeviceCount() (int, error) {
	const op = "DeviceGetCount"
	if err := l.checkOpen(op); err != nil {
		return 0, err
	}
	r := l.resolve(opDeviceGetCount)
	if r.err != nil {
		return 0, r.err
	}

	var count uint32
	var ret Return
	switch r.suffix {
	case "_v2":
		ret = l.native.nvmlDeviceGetCount_v2(&count)
	default:
		ret = l.native.nvmlDeviceGetCount(&count)
	}
	if err := errorOf(op, ret); err != nil {
		return 0, err
	}
	return int(count), nil
}

// DeviceByIndex returns the device at the given enumeration index.
func (l *Library) DeviceByIndex(index int) (Device, error) {
	const op = "DeviceGetHandleByIndex"
	if index < 0 {
		return Device{}, errInvalidArgument(op)
	}
	if err := l.checkOpen(op); err != nil {
		return Device{}, err
	}
	r := l.resolve(opDeviceGetHandleByIndex)
	if r.err != nil {
		return Device{}, r.err
	}

	var dev nvmlDevice
	var ret Return
	switch r.suffix {
	case "_v2":
		ret = l.native.nvmlDeviceGetHandleByIndex_v2(uint32(index), &dev)
	default:
		ret = l.native.nvmlDeviceGetHandleByIndex(uint32(index), &dev)
	}
	if err := errorOf(op, ret); err != nil {
		return Device{}, err
	}
	return Device{lib: l, dev: dev}, nil
}

// DeviceByUUID returns the device with the given UUID ("GPU-..." form).
func (l *Library) DeviceByUUID(uuid string) (Device, error) {
	const op = "DeviceGetHandleByUUID"
	if uuid == "" {
		return Device{}, errInvalidArgument(op)
	}
	if err := l.checkOpen(op); err != nil {
		return Device{}, err
	}
	r := l.resolve(opDeviceGetHandleByUUID)
	if r.err != nil {
		return Device{}, r.err
	}

	var dev nvmlDevice
	if err := errorOf(op, l.native.nvmlDeviceGetHandleByUUID(uuid, &dev)); err != nil {
		return Device{}, err
	}
	return Device{lib: l, dev: dev}, nil
}

// DeviceByPciBusID returns the device at the given PCI bus id
// ("0000:3b:00.0" form).
func (l *Library) DeviceByPciBusID(busID string) (Device, error) {
	const op = "DeviceGetHandleByPciBusId"
	if busID == "" {
		return Device{}, errInvalidArgument(op)
	}
	if err := l.checkOpen(op); err != nil {
		return Device{}, err
	}
	r := l.resolve(opDeviceGetHandleByPciBusId)
	if r.err != nil {
		return Device{}, r.err
	}

	var dev nvmlDevice
	var ret Return
	switch r.suffix {
	case "_v2":
		ret = l.native.nvmlDeviceGetHandleByPciBusId_v2(busID, &dev)
	default:
		ret = l.native.nvmlDeviceGetHandleByPciBusId(busID, &dev)
	}
	if err := errorOf(op, ret); err != nil {
		return Device{}, err
	}
	return Device{lib: l, dev: dev}, nil
}

// Name returns the product name of the device.
func (d Device) Name() (string, error) {
	const op = "DeviceGetName"
	if err := d.lib.checkOpen(op); err != nil {
		return "", err
	}
	r := d.lib.resolve(opDeviceGetName)
	if r.err != nil {
		return "", r.err
	}
	return queryString(op, deviceNameBufferSize, func(buf *byte, length uint32) Return {
		return d.lib.native.nvmlDeviceGetName(d.dev, buf, length)
	})
}

// UUID returns the globally unique immutable identifier of the device.
func (d Device) UUID() (string, error) {
	const op = "DeviceGetUUID"
	if err := d.lib.checkOpen(op); err != nil {
		return "", err
	}
	r := d.lib.resolve(opDeviceGetUUID)
	if r.err != nil {
		return "", r.err
	}
	return queryString(op, deviceUUIDBufferSize, func(buf *byte, length uint32) Return {
		return d.lib.native.nvmlDeviceGetUUID(d.dev, buf, length)
	})
}

// Index returns the enumeration index of the device.
func (d Device) Index() (int, error) {
	const op = "DeviceGetIndex"
	if err := d.lib.checkOpen(op); err != nil {
		return 0, err
	}
	r := d.lib.resolve(opDeviceGetIndex)
	if r.err != nil {
		return 0, r.err
	}

	var index uint32
	if err := errorOf(op, d.lib.native.nvmlDeviceGetIndex(d.dev, &index)); err != nil {
		return 0, err
	}
	return int(index), nil
}

// MemoryInfo returns the framebuffer memory accounting of the device.
// The decoder follows the resolved variant: drivers exporting the
// versioned query also report driver-reserved memory.
func (d Device) MemoryInfo() (MemoryInfo, error) {
	const op = "DeviceGetMemoryInfo"
	if err := d.lib.checkOpen(op); err != nil {
		return MemoryInfo{}, err
	}
	r := d.lib.resolve(opDeviceGetMemoryInfo)
	if r.err != nil {
		return MemoryInfo{}, r.err
	}

	switch r.suffix {
	case "_v2":
		mem := nvmlMemoryV2{Version: nvmlMemoryV2Version}
		if err := errorOf(op, d.lib.native.nvmlDeviceGetMemoryInfo_v2(d.dev, &mem)); err != nil {
			return MemoryInfo{}, err
		}
		return decodeMemoryV2(&mem), nil
	default:
		var mem nvmlMemory
		if err := errorOf(op, d.lib.native.nvmlDeviceGetMemoryInfo(d.dev, &mem)); err != nil {
			return MemoryInfo{}, err
		}
		return decodeMemory(&mem), nil
	}
}

// PciInfo returns the PCI identity of the device, decoded with the
// layout matching the resolved variant.
func (d Device) PciInfo() (PciInfo, error) {
	const op = "DeviceGetPciInfo"
	if err := d.lib.checkOpen(op); err != nil {
		return PciInfo{}, err
	}
	r := d.lib.resolve(opDeviceGetPciInfo)
	if r.err != nil {
		return PciInfo{}, r.err
	}

	switch r.suffix {
	case "_v3":
		var pci nvmlPciInfoV3
		if err := errorOf(op, d.lib.native.nvmlDeviceGetPciInfo_v3(d.dev, &pci)); err != nil {
			return PciInfo{}, err
		}
		return decodePciInfoV3(&pci), nil
	case "_v2":
		var pci nvmlPciInfoLegacy
		if err := errorOf(op, d.lib.native.nvmlDeviceGetPciInfo_v2(d.dev, &pci)); err != nil {
			return PciInfo{}, err
		}
		return decodePciInfoLegacy(&pci), nil
	default:
		var pci nvmlPciInfoLegacy
		if err := errorOf(op, d.lib.native.nvmlDeviceGetPciInfo(d.dev, &pci)); err != nil {
			return PciInfo{}, err
		}
		return decodePciInfoLegacy(&pci), nil
	}
}

// UtilizationRates returns GPU and memory utilization over the last
// sampling window.
func (d Device) UtilizationRates() (Utilization, error) {
	const op = "DeviceGetUtilizationRates"
	if err := d.lib.checkOpen(op); err != nil {
		return Utilization{}, err
	}
	r := d.lib.resolve(opDeviceGetUtilizationRates)
	if r.err != nil {
		return Utilization{}, r.err
	}

	var util nvmlUtilization
	if err := errorOf(op, d.lib.native.nvmlDeviceGetUtilizationRates(d.dev, &util)); err != nil {
		return Utilization{}, err
	}
	return Utilization{Gpu: util.Gpu, Memory: util.Memory}, nil
}

// Temperature returns the reading of the given sensor, in degrees
// Celsius.
func (d Device) Temperature(sensor TemperatureSensor) (uint32, error) {
	const op = "DeviceGetTemperature"
	if err := d.lib.checkOpen(op); err != nil {
		return 0, err
	}
	r := d.lib.resolve(opDeviceGetTemperature)
	if r.err != nil {
		return 0, r.err
	}

	var temp uint32
	if err := errorOf(op, d.lib.native.nvmlDeviceGetTemperature(d.dev, uint32(sensor), &temp)); err != nil {
		return 0, err
	}
	return temp, nil
}

// PowerUsage returns the current draw of the device in milliwatts.
func (d Device) PowerUsage() (uint32, error) {
	const op = "DeviceGetPowerUsage"
	if err := d.lib.checkOpen(op); err != nil {
		return 0, err
	}
	r := d.lib.resolve(opDeviceGetPowerUsage)
	if r.err != nil {
		return 0, r.err
	}

	var milliwatts uint32
	if err := errorOf(op, d.lib.native.nvmlDeviceGetPowerUsage(d.dev, &milliwatts)); err != nil {
		return 0, err
	}
	return milliwatts, nil
}

// ComputeRunningProcesses lists the processes with a compute context on
// the device. The variable-length protocol (probe, resize once, retry)
// is handled internally; the slice layout decoded matches the resolved
// variant.
func (d Device) ComputeRunningProcesses() ([]ProcessInfo, error) {
	const op = "DeviceGetComputeRunningProcesses"
	if err := d.lib.checkOpen(op); err != nil {
		return nil, err
	}
	r := d.lib.resolve(opDeviceGetComputeRunningProcesses)
	if r.err != nil {
		return nil, r.err
	}

	switch r.suffix {
	case "_v3":
		infos, err := queryList(op, func(count *uint32, buf *nvmlProcessInfoV3) Return {
			return d.lib.native.nvmlDeviceGetComputeRunningProcesses_v3(d.dev, count, buf)
		})
		if err != nil {
			return nil, err
		}
		return decodeProcessInfoV3(infos), nil
	case "_v2":
		infos, err := queryList(op, func(count *uint32, buf *nvmlProcessInfoV2) Return {
			return d.lib.native.nvmlDeviceGetComputeRunningProcesses_v2(d.dev, count, buf)
		})
		if err != nil {
			return nil, err
		}
		return decodeProcessInfoV2(infos), nil
	default:
		infos, err := queryList(op, func(count *uint32, buf *nvmlProcessInfoV1) Return {
			return d.lib.native.nvmlDeviceGetComputeRunningProcesses(d.dev, count, buf)
		})
		if err != nil {
			return nil, err
		}
		return decodeProcessInfoV1(infos), nil
	}
}

// SetPersistenceMode sets whether the driver stays loaded with no
// active clients. Requires root.
func (d Device) SetPersistenceMode(mode PersistenceMode) error {
	const op = "DeviceSetPersistenceMode"
	if mode != PersistenceDisabled && mode != PersistenceEnabled {
		return errInvalidArgument(op)
	}
	if err := d.lib.checkOpen(op); err != nil {
		return err
	}
	r := d.lib.resolve(opDeviceSetPersistenceMode)
	if r.err != nil {
		return r.err
	}
	return errorOf(op, d.lib.native.nvmlDeviceSetPersistenceMode(d.dev, uint32(mode)))
}

// ClearAccountingPids clears the accounting information of all done
// processes. Requires root.
func (d Device) ClearAccountingPids() error {
	const op = "DeviceClearAccountingPids"
	if err := d.lib.checkOpen(op); err != nil {
		return err
	}
	r := d.lib.resolve(opDeviceClearAccountingPids)
	if r.err != nil {
		return r.err
	}
	return errorOf(op, d.lib.native.nvmlDeviceClearAccountingPids(d.dev))
}

// RegisterEvents subscribes the event set to the given event type bits
// for this device.
func (d Device) RegisterEvents(eventTypes uint64, set *EventSet) error {
	const op = "DeviceRegisterEvents"
	if set == nil {
		return errInvalidArgument(op)
	}
	if err := d.lib.checkOpen(op); err != nil {
		return err
	}
	r := d.lib.resolve(opDeviceRegisterEvents)
	if r.err != nil {
		return r.err
	}

	set.mu.Lock()
	defer set.mu.Unlock()
	if set.freed {
		return errInvalidHandle(op)
	}
	return errorOf(op, d.lib.native.nvmlDeviceRegisterEvents(d.dev, eventTypes, set.set))
}
