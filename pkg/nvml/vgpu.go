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

// VgpuType is a non-owning, copyable reference to a vGPU type the
// device can host. The native identifier is a plain integer, so there
// is no lifecycle to track; queries on a stale type report NotFound.
type VgpuType struct {
	lib *Library
	id  nvmlVgpuTypeId
}

// VgpuInstance is a non-owning, copyable reference to a running vGPU.
type VgpuInstance struct {
	lib *Library
	id  nvmlVgpuInstance
}

// SupportedVgpus lists the vGPU types the device supports.
func (d Device) SupportedVgpus() ([]VgpuType, error) {
	const op = "DeviceGetSupportedVgpus"
	if err := d.lib.checkOpen(op); err != nil {
		return nil, err
	}
	r := d.lib.resolve(opDeviceGetSupportedVgpus)
	if r.err != nil {
		return nil, r.err
	}

	ids, err := queryList(op, func(count *uint32, buf *nvmlVgpuTypeId) Return {
		return d.lib.native.nvmlDeviceGetSupportedVgpus(d.dev, count, buf)
	})
	if err != nil {
		return nil, err
	}
	return d.vgpuTypes(ids), nil
}

// CreatableVgpus lists the vGPU types creatable on the device right
// now, given its current vGPU load.
func (d Device) CreatableVgpus() ([]VgpuType, error) {
	const op = "DeviceGetCreatableVgpus"
	if err := d.lib.checkOpen(op); err != nil {
		return nil, err
	}
	r := d.lib.resolve(opDeviceGetCreatableVgpus)
	if r.err != nil {
		return nil, r.err
	}

	ids, err := queryList(op, func(count *uint32, buf *nvmlVgpuTypeId) Return {
		return d.lib.native.nvmlDeviceGetCreatableVgpus(d.dev, count, buf)
	})
	if err != nil {
		return nil, err
	}
	return d.vgpuTypes(ids), nil
}

// ActiveVgpus lists the vGPU instances running on the device.
func (d Device) ActiveVgpus() ([]VgpuInstance, error) {
	const op = "DeviceGetActiveVgpus"
	if err := d.lib.checkOpen(op); err != nil {
		return nil, err
	}
	r := d.lib.resolve(opDeviceGetActiveVgpus)
	if r.err != nil {
		return nil, r.err
	}

	ids, err := queryList(op, func(count *uint32, buf *nvmlVgpuInstance) Return {
		return d.lib.native.nvmlDeviceGetActiveVgpus(d.dev, count, buf)
	})
	if err != nil {
		return nil, err
	}
	instances := make([]VgpuInstance, len(ids))
	for i, id := range ids {
		instances[i] = VgpuInstance{lib: d.lib, id: id}
	}
	return instances, nil
}

func (d Device) vgpuTypes(ids []nvmlVgpuTypeId) []VgpuType {
	types := make([]VgpuType, len(ids))
	for i, id := range ids {
		types[i] = VgpuType{lib: d.lib, id: id}
	}
	return types
}

// ID returns the numeric vGPU type identifier.
func (t VgpuType) ID() uint32 {
	return uint32(t.id)
}

// Name returns the display name of the vGPU type.
func (t VgpuType) Name() (string, error) {
	const op = "VgpuTypeGetName"
	if err := t.lib.checkOpen(op); err != nil {
		return "", err
	}
	r := t.lib.resolve(opVgpuTypeGetName)
	if r.err != nil {
		return "", r.err
	}
	return querySizedString(op, vgpuNameBufferSize, func(buf *byte, size *uint32) Return {
		return t.lib.native.nvmlVgpuTypeGetName(t.id, buf, size)
	})
}

// MaxInstances returns how many instances of the type the given device
// can host.
func (t VgpuType) MaxInstances(d Device) (int, error) {
	const op = "VgpuTypeGetMaxInstances"
	if err := t.lib.checkOpen(op); err != nil {
		return 0, err
	}
	r := t.lib.resolve(opVgpuTypeGetMaxInstances)
	if r.err != nil {
		return 0, r.err
	}

	var count uint32
	if err := errorOf(op, t.lib.native.nvmlVgpuTypeGetMaxInstances(d.dev, t.id, &count)); err != nil {
		return 0, err
	}
	return int(count), nil
}

// ID returns the numeric vGPU instance identifier.
func (v VgpuInstance) ID() uint32 {
	return uint32(v.id)
}

// UUID returns the UUID of the vGPU instance.
func (v VgpuInstance) UUID() (string, error) {
	const op = "VgpuInstanceGetUUID"
	if err := v.lib.checkOpen(op); err != nil {
		return "", err
	}
	r := v.lib.resolve(opVgpuInstanceGetUUID)
	if r.err != nil {
		return "", r.err
	}
	return queryString(op, vgpuUUIDBufferSize, func(buf *byte, length uint32) Return {
		return v.lib.native.nvmlVgpuInstanceGetUUID(v.id, buf, length)
	})
}

// VmID returns the hypervisor identifier of the VM running the vGPU
// instance, together with the format the identifier is in.
func (v VgpuInstance) VmID() (string, VgpuVmIDType, error) {
	const op = "VgpuInstanceGetVmID"
	if err := v.lib.checkOpen(op); err != nil {
		return "", 0, err
	}
	r := v.lib.resolve(opVgpuInstanceGetVmID)
	if r.err != nil {
		return "", 0, r.err
	}

	var idType uint32
	buf := make([]byte, vgpuVmIDBufferSize)
	ret := v.lib.native.nvmlVgpuInstanceGetVmID(v.id, &buf[0], uint32(len(buf)), &idType)
	if err := errorOf(op, ret); err != nil {
		return "", 0, err
	}
	return cstr(buf), VgpuVmIDType(idType), nil
}
