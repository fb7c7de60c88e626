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
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Owning handles", func() {
	var (
		fake *fakeNative
		lib  *Library
		dev  Device
	)

	BeforeEach(func() {
		fake = newFakeNative(allSymbols()...)
		lib = newLibrary(fake, false)
		Expect(lib.Init()).To(Succeed())
		var err error
		dev, err = lib.DeviceByIndex(0)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("GPU instances", func() {
		It("creates, inspects, and destroys an instance", func() {
			fake.giInfoFn = func(_ nvmlGpuInstance, info *nvmlGpuInstanceInfo) Return {
				info.Id = 3
				info.ProfileId = 9
				info.Placement = nvmlGpuInstancePlacement{Start: 4, Size: 2}
				return Success
			}

			gi, err := dev.CreateGpuInstance(9)
			Expect(err).NotTo(HaveOccurred())

			info, err := gi.Info()
			Expect(err).NotTo(HaveOccurred())
			Expect(info).To(Equal(GpuInstanceInfo{
				ID:        3,
				ProfileID: 9,
				Placement: Placement{Start: 4, Size: 2},
			}))

			Expect(gi.Destroy()).To(Succeed())
			Expect(fake.callCount("nvmlGpuInstanceDestroy")).To(Equal(1))
		})

		It("rejects every operation after Destroy without dispatching", func() {
			gi, err := dev.CreateGpuInstance(9)
			Expect(err).NotTo(HaveOccurred())
			Expect(gi.Destroy()).To(Succeed())
			dispatched := len(fake.calls)

			_, err = gi.Info()
			Expect(IsInvalidHandle(err)).To(BeTrue(), "got %v", err)
			_, err = gi.CreateComputeInstance(1)
			Expect(IsInvalidHandle(err)).To(BeTrue(), "got %v", err)
			Expect(IsInvalidHandle(gi.Destroy())).To(BeTrue())
			Expect(fake.calls).To(HaveLen(dispatched), "destroyed handle reached the native library")
		})

		It("stays destroyed even when the native destroy fails", func() {
			fake.giDestroyFn = func(nvmlGpuInstance) Return { return ErrorInUse }

			gi, err := dev.CreateGpuInstance(9)
			Expect(err).NotTo(HaveOccurred())
			Expect(gi.Destroy()).To(HaveOccurred())

			_, err = gi.Info()
			Expect(IsInvalidHandle(err)).To(BeTrue(), "got %v", err)
		})

		It("folds the MIG activation status into SetMigMode", func() {
			fake.setMigModeFn = func(_ nvmlDevice, mode uint32, activationStatus *Return) Return {
				*activationStatus = ErrorNotSupported
				return Success
			}
			err := dev.SetMigMode(MigEnabled)
			Expect(IsUnsupported(err)).To(BeTrue(), "got %v", err)
		})

		It("lists compute instances as live handles", func() {
			fake.ciListFn = func(_ nvmlGpuInstance, profileID uint32, cis *nvmlComputeInstance, count *uint32) Return {
				if cis == nil {
					*count = 2
					return ErrorInsufficientSize
				}
				return Success
			}

			gi, err := dev.CreateGpuInstance(9)
			Expect(err).NotTo(HaveOccurred())
			cis, err := gi.ComputeInstances(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(cis).To(HaveLen(2))

			Expect(cis[0].Destroy()).To(Succeed())
			_, err = cis[0].Info()
			Expect(IsInvalidHandle(err)).To(BeTrue())

			// Destroying one instance leaves its siblings usable.
			_, err = cis[1].Info()
			Expect(err).NotTo(HaveOccurred())
		})

		It("decodes compute instance info with the resolved variant", func() {
			fake.ciInfoV2Fn = func(_ nvmlComputeInstance, info *nvmlComputeInstanceInfo) Return {
				info.Id = 1
				info.ProfileId = 2
				info.Placement = nvmlComputeInstancePlacement{Start: 0, Size: 1}
				return Success
			}

			gi, err := dev.CreateGpuInstance(9)
			Expect(err).NotTo(HaveOccurred())
			ci, err := gi.CreateComputeInstance(2)
			Expect(err).NotTo(HaveOccurred())

			info, err := ci.Info()
			Expect(err).NotTo(HaveOccurred())
			Expect(info).To(Equal(ComputeInstanceInfo{
				ID:        1,
				ProfileID: 2,
				Placement: Placement{Start: 0, Size: 1},
			}))
			Expect(fake.callCount("nvmlComputeInstanceGetInfo_v2")).To(Equal(1))
			Expect(fake.callCount("nvmlComputeInstanceGetInfo")).To(BeZero())
		})
	})

	Context("event sets", func() {
		It("delivers MIG-attributed events through the v2 wait", func() {
			fake.eventWaitV2Fn = func(_ nvmlEventSet, data *nvmlEventDataV2, timeoutMs uint32) Return {
				Expect(timeoutMs).To(Equal(uint32(5000)))
				data.EventType = EventTypeXidCriticalError
				data.EventData = 79
				data.GpuInstanceId = 2
				data.ComputeInstanceId = 0
				return Success
			}

			set, err := lib.NewEventSet()
			Expect(err).NotTo(HaveOccurred())
			Expect(dev.RegisterEvents(EventTypeXidCriticalError, set)).To(Succeed())

			ev, err := set.Wait(5000)
			Expect(err).NotTo(HaveOccurred())
			Expect(ev).To(Equal(EventData{
				EventType:         EventTypeXidCriticalError,
				EventData:         79,
				GpuInstanceID:     2,
				ComputeInstanceID: 0,
			}))
		})

		It("marks v1 events as outside any MIG instance", func() {
			old := newFakeNative(symbolsWithout("nvmlEventSetWait_v2")...)
			old.eventWaitFn = func(_ nvmlEventSet, data *nvmlEventDataV1, timeoutMs uint32) Return {
				data.EventType = EventTypePState
				data.EventData = 1
				return Success
			}
			oldLib := newLibrary(old, true)
			set, err := oldLib.NewEventSet()
			Expect(err).NotTo(HaveOccurred())

			ev, err := set.Wait(100)
			Expect(err).NotTo(HaveOccurred())
			Expect(ev.GpuInstanceID).To(Equal(NoMigInstanceID))
			Expect(ev.ComputeInstanceID).To(Equal(NoMigInstanceID))
		})

		It("surfaces an elapsed wait as a timeout", func() {
			fake.eventWaitV2Fn = func(_ nvmlEventSet, _ *nvmlEventDataV2, _ uint32) Return {
				return ErrorTimeout
			}
			set, err := lib.NewEventSet()
			Expect(err).NotTo(HaveOccurred())

			_, err = set.Wait(10)
			Expect(IsTimeout(err)).To(BeTrue(), "got %v", err)
		})

		It("rejects use after Free without dispatching", func() {
			set, err := lib.NewEventSet()
			Expect(err).NotTo(HaveOccurred())
			Expect(set.Free()).To(Succeed())
			dispatched := len(fake.calls)

			_, err = set.Wait(10)
			Expect(IsInvalidHandle(err)).To(BeTrue(), "got %v", err)
			Expect(IsInvalidHandle(set.Free())).To(BeTrue())
			Expect(IsInvalidHandle(dev.RegisterEvents(EventTypeClock, set))).To(BeTrue())
			Expect(fake.calls).To(HaveLen(dispatched), "freed handle reached the native library")
		})
	})

	Context("GPM samples", func() {
		It("reports device support from the versioned query", func() {
			fake.gpmSupportFn = func(_ nvmlDevice, support *nvmlGpmSupport) Return {
				Expect(support.Version).To(Equal(nvmlGpmSupportVersion))
				support.IsSupportedDevice = 1
				return Success
			}
			ok, err := dev.GpmSupported()
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		})

		It("captures snapshots into an allocated sample", func() {
			sample, err := lib.NewGpmSample()
			Expect(err).NotTo(HaveOccurred())
			Expect(dev.GpmSampleGet(sample)).To(Succeed())
			Expect(sample.Free()).To(Succeed())

			Expect(IsInvalidHandle(dev.GpmSampleGet(sample))).To(BeTrue())
			Expect(IsInvalidHandle(sample.Free())).To(BeTrue())
			Expect(fake.callCount("nvmlGpmSampleFree")).To(Equal(1))
		})

		It("computes metrics between two samples with per-metric status", func() {
			first, err := lib.NewGpmSample()
			Expect(err).NotTo(HaveOccurred())
			second, err := lib.NewGpmSample()
			Expect(err).NotTo(HaveOccurred())
			Expect(dev.GpmSampleGet(first)).To(Succeed())
			Expect(dev.GpmSampleGet(second)).To(Succeed())

			fake.gpmMetricsFn = func(req *nvmlGpmMetricsGetType) Return {
				Expect(req.Version).To(Equal(nvmlGpmMetricsGetVersion))
				Expect(req.NumMetrics).To(Equal(uint32(2)))
				Expect(req.Metrics[0].MetricId).To(Equal(uint32(1)))
				Expect(req.Metrics[1].MetricId).To(Equal(uint32(30)))
				req.Metrics[0].Value = 87.5
				req.Metrics[1].NvmlReturn = ErrorNotSupported
				return Success
			}
			metrics, err := lib.GpmMetrics(first, second, []uint32{1, 30})
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics).To(HaveLen(2))
			Expect(metrics[0].Value).To(Equal(87.5))
			Expect(metrics[0].Err).NotTo(HaveOccurred())
			Expect(IsUnsupported(metrics[1].Err)).To(BeTrue())
		})

		It("rejects metric requests over freed or aliased samples", func() {
			first, err := lib.NewGpmSample()
			Expect(err).NotTo(HaveOccurred())
			second, err := lib.NewGpmSample()
			Expect(err).NotTo(HaveOccurred())

			_, err = lib.GpmMetrics(first, first, []uint32{1})
			Expect(IsKind(err, KindInvalidArgument)).To(BeTrue())
			_, err = lib.GpmMetrics(first, second, nil)
			Expect(IsKind(err, KindInvalidArgument)).To(BeTrue())

			Expect(second.Free()).To(Succeed())
			dispatched := len(fake.calls)
			_, err = lib.GpmMetrics(first, second, []uint32{1})
			Expect(IsInvalidHandle(err)).To(BeTrue())
			Expect(fake.calls).To(HaveLen(dispatched))
		})

		It("serves opposite-order metric requests concurrently", func() {
			first, err := lib.NewGpmSample()
			Expect(err).NotTo(HaveOccurred())
			second, err := lib.NewGpmSample()
			Expect(err).NotTo(HaveOccurred())

			var wg sync.WaitGroup
			errs := make(chan error, 128)
			for i := 0; i < 64; i++ {
				wg.Add(2)
				go func() {
					defer wg.Done()
					_, err := lib.GpmMetrics(first, second, []uint32{1})
					errs <- err
				}()
				go func() {
					defer wg.Done()
					_, err := lib.GpmMetrics(second, first, []uint32{1})
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				Expect(err).NotTo(HaveOccurred())
			}
		})
	})

	Context("vGPU queries", func() {
		It("lists supported types and resolves their names", func() {
			fake.supportedVgpusFn = func(_ nvmlDevice, count *uint32, typeIDs *nvmlVgpuTypeId) Return {
				if typeIDs == nil {
					*count = 2
					return ErrorInsufficientSize
				}
				fillList(typeIDs, *count, []nvmlVgpuTypeId{11, 12})
				return Success
			}
			fake.vgpuTypeNameFn = func(typeID nvmlVgpuTypeId, buf *byte, size *uint32) Return {
				writeCString(buf, *size, "GRID A100-4C")
				return Success
			}

			types, err := dev.SupportedVgpus()
			Expect(err).NotTo(HaveOccurred())
			Expect(types).To(HaveLen(2))

			name, err := types[0].Name()
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("GRID A100-4C"))
		})

		It("regrows the name buffer when the driver asks for more", func() {
			requested := uint32(0)
			fake.vgpuTypeNameFn = func(typeID nvmlVgpuTypeId, buf *byte, size *uint32) Return {
				if *size < 2*vgpuNameBufferSize {
					requested = 2 * vgpuNameBufferSize
					*size = requested
					return ErrorInsufficientSize
				}
				writeCString(buf, *size, "GRID A100-40C")
				return Success
			}

			types := []VgpuType{{lib: lib, id: 11}}
			name, err := types[0].Name()
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("GRID A100-40C"))
			Expect(requested).To(Equal(uint32(2 * vgpuNameBufferSize)))
		})

		It("returns the VM identifier with its format", func() {
			fake.activeVgpusFn = func(_ nvmlDevice, count *uint32, instances *nvmlVgpuInstance) Return {
				if instances == nil {
					*count = 1
					return ErrorInsufficientSize
				}
				fillList(instances, *count, []nvmlVgpuInstance{3001})
				return Success
			}
			fake.vgpuVmIDFn = func(_ nvmlVgpuInstance, buf *byte, size uint32, idType *uint32) Return {
				writeCString(buf, size, "420d4cb2-50a4-4e11-a66c-6b4a6c023fe2")
				*idType = uint32(VgpuVmIDUUID)
				return Success
			}

			active, err := dev.ActiveVgpus()
			Expect(err).NotTo(HaveOccurred())
			Expect(active).To(HaveLen(1))

			vmID, idType, err := active[0].VmID()
			Expect(err).NotTo(HaveOccurred())
			Expect(vmID).To(Equal("420d4cb2-50a4-4e11-a66c-6b4a6c023fe2"))
			Expect(idType).To(Equal(VgpuVmIDUUID))
		})
	})
})
