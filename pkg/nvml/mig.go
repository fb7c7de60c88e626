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

import "sync"

// GpuInstance is an owning handle for a created GPU instance. Destroy
// moves it permanently into the destroyed state; every later method
// call fails without reaching the native library. Methods are safe for
// concurrent use.
type GpuInstance struct {
	lib *Library

	mu        sync.Mutex
	gi        nvmlGpuInstance
	destroyed bool
}

// ComputeInstance is an owning handle for a created compute instance.
// It follows the same one-way lifecycle as GpuInstance.
type ComputeInstance struct {
	lib *Library

	mu        sync.Mutex
	ci        nvmlComputeInstance
	destroyed bool
}

// MigMode returns the current and pending MIG modes of the device. The
// pending mode takes effect at the next GPU reset.
func (d Device) MigMode() (current, pending MigMode, err error) {
	const op = "DeviceGetMigMode"
	if err := d.lib.checkOpen(op); err != nil {
		return 0, 0, err
	}
	r := d.lib.resolve(opDeviceGetMigMode)
	if r.err != nil {
		return 0, 0, r.err
	}

	var cur, pend uint32
	if err := errorOf(op, d.lib.native.nvmlDeviceGetMigMode(d.dev, &cur, &pend)); err != nil {
		return 0, 0, err
	}
	return MigMode(cur), MigMode(pend), nil
}

// SetMigMode requests a MIG mode change. The native call can succeed
// while the activation itself fails; the activation status is folded
// into the returned error so a nil return means both steps succeeded.
func (d Device) SetMigMode(mode MigMode) error {
	const op = "DeviceSetMigMode"
	if mode != MigDisabled && mode != MigEnabled {
		return errInvalidArgument(op)
	}
	if err := d.lib.checkOpen(op); err != nil {
		return err
	}
	r := d.lib.resolve(opDeviceSetMigMode)
	if r.err != nil {
		return r.err
	}

	activation := Success
	if err := errorOf(op, d.lib.native.nvmlDeviceSetMigMode(d.dev, uint32(mode), &activation)); err != nil {
		return err
	}
	return errorOf(op, activation)
}

// GpuInstanceProfileInfo returns the capacity of one canonical GPU
// instance profile on the device.
func (d Device) GpuInstanceProfileInfo(profile GpuInstanceProfileID) (GpuInstanceProfileInfo, error) {
	const op = "DeviceGetGpuInstanceProfileInfo"
	if err := d.lib.checkOpen(op); err != nil {
		return GpuInstanceProfileInfo{}, err
	}
	r := d.lib.resolve(opDeviceGetGpuInstanceProfileInfo)
	if r.err != nil {
		return GpuInstanceProfileInfo{}, r.err
	}

	var info nvmlGpuInstanceProfileInfo
	if err := errorOf(op, d.lib.native.nvmlDeviceGetGpuInstanceProfileInfo(d.dev, uint32(profile), &info)); err != nil {
		return GpuInstanceProfileInfo{}, err
	}
	return decodeGpuInstanceProfileInfo(&info), nil
}

// CreateGpuInstance creates a GPU instance with the given profile id
// (the ID field of a GpuInstanceProfileInfo, not the canonical profile
// enumerant). The device must be in MIG mode. Requires root.
func (d Device) CreateGpuInstance(profileID uint32) (*GpuInstance, error) {
	const op = "DeviceCreateGpuInstance"
	if err := d.lib.checkOpen(op); err != nil {
		return nil, err
	}
	r := d.lib.resolve(opDeviceCreateGpuInstance)
	if r.err != nil {
		return nil, r.err
	}

	var gi nvmlGpuInstance
	if err := errorOf(op, d.lib.native.nvmlDeviceCreateGpuInstance(d.dev, profileID, &gi)); err != nil {
		return nil, err
	}
	return &GpuInstance{lib: d.lib, gi: gi}, nil
}

// Info returns the identity and placement of the GPU instance.
func (g *GpuInstance) Info() (GpuInstanceInfo, error) {
	const op = "GpuInstanceGetInfo"
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.destroyed {
		return GpuInstanceInfo{}, errInvalidHandle(op)
	}
	if err := g.lib.checkOpen(op); err != nil {
		return GpuInstanceInfo{}, err
	}
	r := g.lib.resolve(opGpuInstanceGetInfo)
	if r.err != nil {
		return GpuInstanceInfo{}, r.err
	}

	var info nvmlGpuInstanceInfo
	if err := errorOf(op, g.lib.native.nvmlGpuInstanceGetInfo(g.gi, &info)); err != nil {
		return GpuInstanceInfo{}, err
	}
	return GpuInstanceInfo{
		ID:        info.Id,
		ProfileID: info.ProfileId,
		Placement: Placement{Start: info.Placement.Start, Size: info.Placement.Size},
	}, nil
}

// CreateComputeInstance creates a compute instance with the given
// profile id inside the GPU instance. Requires root.
func (g *GpuInstance) CreateComputeInstance(profileID uint32) (*ComputeInstance, error) {
	const op = "GpuInstanceCreateComputeInstance"
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.destroyed {
		return nil, errInvalidHandle(op)
	}
	if err := g.lib.checkOpen(op); err != nil {
		return nil, err
	}
	r := g.lib.resolve(opGpuInstanceCreateComputeInstance)
	if r.err != nil {
		return nil, r.err
	}

	var ci nvmlComputeInstance
	if err := errorOf(op, g.lib.native.nvmlGpuInstanceCreateComputeInstance(g.gi, profileID, &ci)); err != nil {
		return nil, err
	}
	return &ComputeInstance{lib: g.lib, ci: ci}, nil
}

// ComputeInstances lists the compute instances of the given profile
// inside the GPU instance.
func (g *GpuInstance) ComputeInstances(profileID uint32) ([]*ComputeInstance, error) {
	const op = "GpuInstanceGetComputeInstances"
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.destroyed {
		return nil, errInvalidHandle(op)
	}
	if err := g.lib.checkOpen(op); err != nil {
		return nil, err
	}
	r := g.lib.resolve(opGpuInstanceGetComputeInstances)
	if r.err != nil {
		return nil, r.err
	}

	raw, err := queryList(op, func(count *uint32, buf *nvmlComputeInstance) Return {
		return g.lib.native.nvmlGpuInstanceGetComputeInstances(g.gi, profileID, buf, count)
	})
	if err != nil {
		return nil, err
	}
	cis := make([]*ComputeInstance, len(raw))
	for i, ci := range raw {
		cis[i] = &ComputeInstance{lib: g.lib, ci: ci}
	}
	return cis, nil
}

// Destroy destroys the GPU instance. The handle is unusable afterwards
// even when the native call fails with a transient error; callers that
// hit ErrorInUse must re-acquire the instance to retry.
func (g *GpuInstance) Destroy() error {
	const op = "GpuInstanceDestroy"
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.destroyed {
		return errInvalidHandle(op)
	}
	if err := g.lib.checkOpen(op); err != nil {
		return err
	}
	r := g.lib.resolve(opGpuInstanceDestroy)
	if r.err != nil {
		return r.err
	}

	g.destroyed = true
	return errorOf(op, g.lib.native.nvmlGpuInstanceDestroy(g.gi))
}

// Info returns the identity and placement of the compute instance. The
// decoder follows the resolved variant of the info query.
func (c *ComputeInstance) Info() (ComputeInstanceInfo, error) {
	const op = "ComputeInstanceGetInfo"
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return ComputeInstanceInfo{}, errInvalidHandle(op)
	}
	if err := c.lib.checkOpen(op); err != nil {
		return ComputeInstanceInfo{}, err
	}
	r := c.lib.resolve(opComputeInstanceGetInfo)
	if r.err != nil {
		return ComputeInstanceInfo{}, r.err
	}

	var info nvmlComputeInstanceInfo
	var ret Return
	switch r.suffix {
	case "_v2":
		ret = c.lib.native.nvmlComputeInstanceGetInfo_v2(c.ci, &info)
	default:
		ret = c.lib.native.nvmlComputeInstanceGetInfo(c.ci, &info)
	}
	if err := errorOf(op, ret); err != nil {
		return ComputeInstanceInfo{}, err
	}
	return ComputeInstanceInfo{
		ID:        info.Id,
		ProfileID: info.ProfileId,
		Placement: Placement{Start: info.Placement.Start, Size: info.Placement.Size},
	}, nil
}

// Destroy destroys the compute instance. The handle is unusable
// afterwards regardless of the native outcome.
func (c *ComputeInstance) Destroy() error {
	const op = "ComputeInstanceDestroy"
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return errInvalidHandle(op)
	}
	if err := c.lib.checkOpen(op); err != nil {
		return err
	}
	r := c.lib.resolve(opComputeInstanceDestroy)
	if r.err != nil {
		return r.err
	}

	c.destroyed = true
	return errorOf(op, c.lib.native.nvmlComputeInstanceDestroy(c.ci))
}
