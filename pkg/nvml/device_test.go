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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Device queries", func() {
	var (
		fake *fakeNative
		lib  *Library
		dev  Device
	)

	device := func(l *Library) Device {
		d, err := l.DeviceByIndex(0)
		Expect(err).NotTo(HaveOccurred())
		return d
	}

	BeforeEach(func() {
		fake = newFakeNative(allSymbols()...)
		lib = newLibrary(fake, false)
		Expect(lib.Init()).To(Succeed())
		dev = device(lib)
	})

	Context("memory info", func() {
		It("uses the versioned query and reports reserved memory", func() {
			fake.memoryInfoV2Fn = func(_ nvmlDevice, mem *nvmlMemoryV2) Return {
				Expect(mem.Version).To(Equal(nvmlMemoryV2Version))
				mem.Total = 16 << 30
				mem.Reserved = 256 << 20
				mem.Free = 12 << 30
				mem.Used = 4 << 30
				return Success
			}

			info, err := dev.MemoryInfo()
			Expect(err).NotTo(HaveOccurred())
			Expect(info).To(Equal(MemoryInfo{
				Total:    16 << 30,
				Free:     12 << 30,
				Used:     4 << 30,
				Reserved: 256 << 20,
			}))
			Expect(fake.callCount("nvmlDeviceGetMemoryInfo_v2")).To(Equal(1))
			Expect(fake.callCount("nvmlDeviceGetMemoryInfo")).To(BeZero())
		})

		It("falls back to the original layout when legacy functions are compiled in", func() {
			old := newFakeNative(symbolsWithout("nvmlDeviceGetMemoryInfo_v2")...)
			old.memoryInfoFn = func(_ nvmlDevice, mem *nvmlMemory) Return {
				mem.Total = 8 << 30
				mem.Free = 8 << 30
				return Success
			}
			oldLib := newLibrary(old, true)
			d := device(oldLib)

			info, err := d.MemoryInfo()
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Total).To(Equal(uint64(8 << 30)))
			Expect(info.Reserved).To(BeZero(), "reserved is unknowable on the old layout")
			Expect(old.callCount("nvmlDeviceGetMemoryInfo")).To(Equal(1))
		})

		It("reports unsupported when only the legacy entry point exists and the gate is off", func() {
			old := newFakeNative(symbolsWithout("nvmlDeviceGetMemoryInfo_v2")...)
			oldLib := newLibrary(old, false)
			d := device(oldLib)

			_, err := d.MemoryInfo()
			Expect(IsUnsupported(err)).To(BeTrue(), "got %v", err)
			Expect(old.callCount("nvmlDeviceGetMemoryInfo")).To(BeZero())
		})
	})

	Context("pci info", func() {
		It("decodes the wide bus id from the v3 layout", func() {
			fake.pciInfoV3Fn = func(_ nvmlDevice, pci *nvmlPciInfoV3) Return {
				copy(pci.BusId[:], "00000000:3B:00.0")
				copy(pci.BusIdLegacy[:], "0000:3B:00.0")
				pci.Domain = 0
				pci.Bus = 0x3B
				pci.Device = 0
				pci.PciDeviceId = 0x20B010DE
				pci.PciSubSystemId = 0x145F10DE
				return Success
			}

			info, err := dev.PciInfo()
			Expect(err).NotTo(HaveOccurred())
			Expect(info.BusID).To(Equal("00000000:3B:00.0"))
			Expect(info.Bus).To(Equal(uint32(0x3B)))
			Expect(info.PciDeviceID).To(Equal(uint32(0x20B010DE)))
		})

		It("is unsupported on a pre-v3 driver without the legacy gate", func() {
			old := newFakeNative(symbolsWithout("nvmlDeviceGetPciInfo_v3")...)
			d := device(newLibrary(old, false))

			_, err := d.PciInfo()
			Expect(IsUnsupported(err)).To(BeTrue(), "got %v", err)
			Expect(old.callCount("nvmlDeviceGetPciInfo_v2")).To(BeZero())
			Expect(old.callCount("nvmlDeviceGetPciInfo")).To(BeZero())
		})

		It("serves pre-v3 drivers through the legacy gate", func() {
			old := newFakeNative(symbolsWithout("nvmlDeviceGetPciInfo_v3")...)
			old.pciInfoV2Fn = func(_ nvmlDevice, pci *nvmlPciInfoLegacy) Return {
				copy(pci.BusId[:], "0000:3B:00.0")
				pci.Bus = 0x3B
				return Success
			}
			d := device(newLibrary(old, true))

			info, err := d.PciInfo()
			Expect(err).NotTo(HaveOccurred())
			Expect(info.BusID).To(Equal("0000:3B:00.0"))
			Expect(old.callCount("nvmlDeviceGetPciInfo_v2")).To(Equal(1))
		})
	})

	Context("compute running processes", func() {
		It("probes for the count and resizes exactly once", func() {
			procs := []nvmlProcessInfoV3{
				{Pid: 1001, UsedGpuMemory: 1 << 30, GpuInstanceId: NoMigInstanceID, ComputeInstanceId: NoMigInstanceID},
				{Pid: 1002, UsedGpuMemory: 2 << 30, GpuInstanceId: 1, ComputeInstanceId: 0, UsedGpuCcProtectedMemory: 64 << 20},
			}
			fake.processesV3Fn = func(_ nvmlDevice, count *uint32, infos *nvmlProcessInfoV3) Return {
				if infos == nil {
					*count = uint32(len(procs))
					return ErrorInsufficientSize
				}
				Expect(*count).To(Equal(uint32(len(procs))))
				fillList(infos, *count, procs)
				return Success
			}

			got, err := dev.ComputeRunningProcesses()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]ProcessInfo{
				{Pid: 1001, UsedGpuMemory: 1 << 30, GpuInstanceID: NoMigInstanceID, ComputeInstanceID: NoMigInstanceID},
				{Pid: 1002, UsedGpuMemory: 2 << 30, GpuInstanceID: 1, ComputeInstanceID: 0, UsedGpuCcProtectedMemory: 64 << 20},
			}))
			Expect(fake.callCount("nvmlDeviceGetComputeRunningProcesses_v3")).To(Equal(2))
		})

		It("returns an empty list without allocating when nothing runs", func() {
			fake.processesV3Fn = func(_ nvmlDevice, count *uint32, infos *nvmlProcessInfoV3) Return {
				*count = 0
				return Success
			}

			got, err := dev.ComputeRunningProcesses()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())
			Expect(fake.callCount("nvmlDeviceGetComputeRunningProcesses_v3")).To(Equal(1))
		})

		It("gives up after bounded retries against a misbehaving driver", func() {
			fake.processesV3Fn = func(_ nvmlDevice, count *uint32, infos *nvmlProcessInfoV3) Return {
				*count++
				return ErrorInsufficientSize
			}

			_, err := dev.ComputeRunningProcesses()
			Expect(IsKind(err, KindInsufficientSize)).To(BeTrue(), "got %v", err)
			Expect(fake.callCount("nvmlDeviceGetComputeRunningProcesses_v3")).To(Equal(1 + maxSizeRetries))
		})

		It("marks processes from the v1 layout as outside any MIG instance", func() {
			old := newFakeNative(symbolsWithout(
				"nvmlDeviceGetComputeRunningProcesses_v3",
				"nvmlDeviceGetComputeRunningProcesses_v2",
			)...)
			old.processesFn = func(_ nvmlDevice, count *uint32, infos *nvmlProcessInfoV1) Return {
				if infos == nil {
					*count = 1
					return ErrorInsufficientSize
				}
				fillList(infos, *count, []nvmlProcessInfoV1{{Pid: 42, UsedGpuMemory: 512 << 20}})
				return Success
			}
			d := device(newLibrary(old, true))

			got, err := d.ComputeRunningProcesses()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(1))
			Expect(got[0].GpuInstanceID).To(Equal(NoMigInstanceID))
			Expect(got[0].ComputeInstanceID).To(Equal(NoMigInstanceID))
		})
	})

	Context("scalar queries", func() {
		It("reads the product name", func() {
			fake.nameFn = func(_ nvmlDevice, buf *byte, length uint32) Return {
				writeCString(buf, length, "NVIDIA H100 80GB HBM3")
				return Success
			}
			name, err := dev.Name()
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("NVIDIA H100 80GB HBM3"))
		})

		It("reads temperature from the requested sensor", func() {
			fake.temperatureFn = func(_ nvmlDevice, sensor uint32, temp *uint32) Return {
				Expect(sensor).To(Equal(uint32(TemperatureGpu)))
				*temp = 63
				return Success
			}
			temp, err := dev.Temperature(TemperatureGpu)
			Expect(err).NotTo(HaveOccurred())
			Expect(temp).To(Equal(uint32(63)))
		})

		It("reads power draw in milliwatts", func() {
			fake.powerUsageFn = func(_ nvmlDevice, milliwatts *uint32) Return {
				*milliwatts = 285000
				return Success
			}
			mw, err := dev.PowerUsage()
			Expect(err).NotTo(HaveOccurred())
			Expect(mw).To(Equal(uint32(285000)))
		})

		It("reads utilization rates", func() {
			fake.utilizationFn = func(_ nvmlDevice, util *nvmlUtilization) Return {
				util.Gpu = 97
				util.Memory = 54
				return Success
			}
			util, err := dev.UtilizationRates()
			Expect(err).NotTo(HaveOccurred())
			Expect(util).To(Equal(Utilization{Gpu: 97, Memory: 54}))
		})

		It("surfaces permission failures from mutating operations", func() {
			fake.setPersistenceFn = func(_ nvmlDevice, mode uint32) Return {
				return ErrorNoPermission
			}
			err := dev.SetPersistenceMode(PersistenceEnabled)
			Expect(IsKind(err, KindInsufficientPermissions)).To(BeTrue(), "got %v", err)
		})

		It("rejects an out-of-range persistence mode before dispatch", func() {
			err := dev.SetPersistenceMode(PersistenceMode(7))
			Expect(IsKind(err, KindInvalidArgument)).To(BeTrue(), "got %v", err)
			Expect(fake.callCount("nvmlDeviceSetPersistenceMode")).To(BeZero())
		})

		It("clears accounted pids and maps the failure when accounting is off", func() {
			Expect(dev.ClearAccountingPids()).To(Succeed())
			Expect(fake.callCount("nvmlDeviceClearAccountingPids")).To(Equal(1))

			fake.clearAccountingFn = func(nvmlDevice) Return { return ErrorNotSupported }
			Expect(IsUnsupported(dev.ClearAccountingPids())).To(BeTrue())
		})
	})

	Context("device lookup", func() {
		It("counts devices with the newest variant", func() {
			fake.deviceCountV2Fn = func(count *uint32) Return {
				*count = 8
				return Success
			}
			n, err := lib.DeviceCount()
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(8))
		})

		It("rejects a negative index before dispatch", func() {
			_, err := lib.DeviceByIndex(-1)
			Expect(IsKind(err, KindInvalidArgument)).To(BeTrue(), "got %v", err)
			Expect(fake.callCount("nvmlDeviceGetHandleByIndex_v2")).To(BeZero())
		})

		It("reports a missing UUID as not found", func() {
			fake.handleByUUIDFn = func(uuid string, device *nvmlDevice) Return {
				return ErrorNotFound
			}
			_, err := lib.DeviceByUUID("GPU-00000000-0000-0000-0000-000000000000")
			Expect(IsNotFound(err)).To(BeTrue(), "got %v", err)
		})
	})
})
