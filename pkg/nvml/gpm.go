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
	"unsafe"
)

// GpmSample is an owning handle for a GPM sample buffer. The native
// library allocates the buffer; Free returns it and moves the handle
// permanently into the freed state.
type GpmSample struct {
	lib *Library

	mu     sync.Mutex
	sample nvmlGpmSample
	freed  bool
}

// GpmSupported reports whether the device supports GPM metrics. Devices
// predating Hopper report false.
func (d Device) GpmSupported() (bool, error) {
	const op = "GpmQueryDeviceSupport"
	if err := d.lib.checkOpen(op); err != nil {
		return false, err
	}
	r := d.lib.resolve(opGpmQueryDeviceSupport)
	if r.err != nil {
		return false, r.err
	}

	support := nvmlGpmSupport{Version: nvmlGpmSupportVersion}
	if err := errorOf(op, d.lib.native.nvmlGpmQueryDeviceSupport(d.dev, &support)); err != nil {
		return false, err
	}
	return support.IsSupportedDevice != 0, nil
}

// NewGpmSample allocates a GPM sample buffer. The caller owns the
// buffer and must Free it.
func (l *Library) NewGpmSample() (*GpmSample, error) {
	const op = "GpmSampleAlloc"
	if err := l.checkOpen(op); err != nil {
		return nil, err
	}
	r := l.resolve(opGpmSampleAlloc)
	if r.err != nil {
		return nil, r.err
	}

	var sample nvmlGpmSample
	if err := errorOf(op, l.native.nvmlGpmSampleAlloc(&sample)); err != nil {
		return nil, err
	}
	return &GpmSample{lib: l, sample: sample}, nil
}

// GpmSampleGet captures a metrics snapshot of the device into the
// sample buffer.
func (d Device) GpmSampleGet(sample *GpmSample) error {
	const op = "GpmSampleGet"
	if sample == nil {
		return errInvalidArgument(op)
	}
	if err := d.lib.checkOpen(op); err != nil {
		return err
	}
	r := d.lib.resolve(opGpmSampleGet)
	if r.err != nil {
		return r.err
	}

	sample.mu.Lock()
	defer sample.mu.Unlock()
	if sample.freed {
		return errInvalidHandle(op)
	}
	return errorOf(op, d.lib.native.nvmlGpmSampleGet(d.dev, sample.sample))
}

// GpmMetric is one metric computed between two GPM samples.
type GpmMetric struct {
	// ID is the nvmlGpmMetricId the metric was requested under.
	ID uint32

	// Value is the computed metric value. Meaningless when Err is set.
	Value float64

	// Err is non-nil when the driver could not compute this metric,
	// while other metrics in the same request succeeded.
	Err error
}

// GpmMetrics computes the requested metrics over the interval between
// two samples captured with GpmSampleGet, first taken before second.
// At most 98 metrics can be requested per call. Per-metric
// failures are reported in the returned slice, not as a call error.
func (l *Library) GpmMetrics(first, second *GpmSample, metricIDs []uint32) ([]GpmMetric, error) {
	const op = "GpmMetricsGet"
	if first == nil || second == nil || first == second {
		return nil, errInvalidArgument(op)
	}
	if len(metricIDs) == 0 || len(metricIDs) > gpmMetricMax {
		return nil, errInvalidArgument(op)
	}
	if err := l.checkOpen(op); err != nil {
		return nil, err
	}
	r := l.resolve(opGpmMetricsGet)
	if r.err != nil {
		return nil, r.err
	}

	// Both sample locks are taken in address order, never argument order.
	lo, hi := first, second
	if uintptr(unsafe.Pointer(hi)) < uintptr(unsafe.Pointer(lo)) {
		lo, hi = hi, lo
	}
	lo.mu.Lock()
	defer lo.mu.Unlock()
	hi.mu.Lock()
	defer hi.mu.Unlock()
	if first.freed || second.freed {
		return nil, errInvalidHandle(op)
	}

	req := nvmlGpmMetricsGetType{
		Version:    nvmlGpmMetricsGetVersion,
		NumMetrics: uint32(len(metricIDs)),
		Sample1:    first.sample,
		Sample2:    second.sample,
	}
	for i, id := range metricIDs {
		req.Metrics[i].MetricId = id
	}
	if err := errorOf(op, l.native.nvmlGpmMetricsGet(&req)); err != nil {
		return nil, err
	}

	metrics := make([]GpmMetric, len(metricIDs))
	for i := range metrics {
		m := req.Metrics[i]
		metrics[i] = GpmMetric{ID: m.MetricId, Value: m.Value, Err: errorOf(op, m.NvmlReturn)}
	}
	return metrics, nil
}

// Free returns the sample buffer to the native library. The handle is
// unusable afterwards.
func (s *GpmSample) Free() error {
	const op = "GpmSampleFree"
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.freed {
		return errInvalidHandle(op)
	}
	if err := s.lib.checkOpen(op); err != nil {
		return err
	}
	r := s.lib.resolve(opGpmSampleFree)
	if r.err != nil {
		return r.err
	}

	s.freed = true
	return errorOf(op, s.lib.native.nvmlGpmSampleFree(s.sample))
}
