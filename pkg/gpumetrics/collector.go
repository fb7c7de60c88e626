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

// Package gpumetrics exports per-GPU metrics in Prometheus format.
// Every scrape performs fresh queries against the management library;
// nothing is sampled in the background, so the exposition always
// reflects the driver's current view.
package gpumetrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog/v2"

	"nvml-guard/pkg/nvml"
)

// GPU is the per-device query surface the collector scrapes.
// nvml.Device satisfies it.
type GPU interface {
	Index() (int, error)
	Name() (string, error)
	UUID() (string, error)
	MemoryInfo() (nvml.MemoryInfo, error)
	UtilizationRates() (nvml.Utilization, error)
	Temperature(nvml.TemperatureSensor) (uint32, error)
	PowerUsage() (uint32, error)
	ComputeRunningProcesses() ([]nvml.ProcessInfo, error)
}

// Source enumerates the GPUs to scrape.
type Source interface {
	Devices() ([]GPU, error)
}

// LibrarySource adapts an initialized nvml.Library into a Source.
type LibrarySource struct {
	Lib *nvml.Library
}

// Devices lists the devices the driver currently manages.
func (s LibrarySource) Devices() ([]GPU, error) {
	count, err := s.Lib.DeviceCount()
	if err != nil {
		return nil, err
	}
	gpus := make([]GPU, 0, count)
	for i := 0; i < count; i++ {
		dev, err := s.Lib.DeviceByIndex(i)
		if err != nil {
			return nil, err
		}
		gpus = append(gpus, dev)
	}
	return gpus, nil
}

var gpuLabels = []string{"gpu", "uuid", "name"}

// Collector implements prometheus.Collector over a Source.
type Collector struct {
	source Source

	memoryTotal    *prometheus.Desc
	memoryUsed     *prometheus.Desc
	memoryFree     *prometheus.Desc
	memoryReserved *prometheus.Desc
	utilization    *prometheus.Desc
	memUtilization *prometheus.Desc
	temperature    *prometheus.Desc
	powerUsage     *prometheus.Desc
	processCount   *prometheus.Desc
}

// NewCollector builds a collector scraping the given source.
func NewCollector(source Source) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName("nvml", "gpu", name),
			help, gpuLabels, nil,
		)
	}
	return &Collector{
		source:         source,
		memoryTotal:    desc("memory_total_bytes", "Total framebuffer memory."),
		memoryUsed:     desc("memory_used_bytes", "Framebuffer memory used by all contexts."),
		memoryFree:     desc("memory_free_bytes", "Framebuffer memory available for allocation."),
		memoryReserved: desc("memory_reserved_bytes", "Framebuffer memory reserved by the driver."),
		utilization:    desc("utilization_percent", "GPU utilization over the last sampling window."),
		memUtilization: desc("memory_utilization_percent", "Memory bandwidth utilization over the last sampling window."),
		temperature:    desc("temperature_celsius", "Die temperature."),
		powerUsage:     desc("power_usage_watts", "Current power draw."),
		processCount:   desc("compute_processes", "Number of processes with a compute context."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.memoryTotal
	ch <- c.memoryUsed
	ch <- c.memoryFree
	ch <- c.memoryReserved
	ch <- c.utilization
	ch <- c.memUtilization
	ch <- c.temperature
	ch <- c.powerUsage
	ch <- c.processCount
}

// Collect implements prometheus.Collector. Queries a device does not
// support are skipped for that device; other failures are logged and
// the remaining devices still report.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	gpus, err := c.source.Devices()
	if err != nil {
		klog.Errorf("listing devices: %v", err)
		return
	}
	for _, gpu := range gpus {
		c.collectDevice(ch, gpu)
	}
}

func (c *Collector) collectDevice(ch chan<- prometheus.Metric, gpu GPU) {
	index, err := gpu.Index()
	if err != nil {
		klog.Errorf("device index: %v", err)
		return
	}
	uuid, err := gpu.UUID()
	if err != nil {
		klog.Errorf("device %d uuid: %v", index, err)
		return
	}
	name, err := gpu.Name()
	if err != nil {
		klog.Errorf("device %d name: %v", index, err)
		return
	}
	labels := []string{strconv.Itoa(index), uuid, name}

	gauge := func(desc *prometheus.Desc, value float64) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value, labels...)
	}

	if mem, err := gpu.MemoryInfo(); err == nil {
		gauge(c.memoryTotal, float64(mem.Total))
		gauge(c.memoryUsed, float64(mem.Used))
		gauge(c.memoryFree, float64(mem.Free))
		gauge(c.memoryReserved, float64(mem.Reserved))
	} else if !nvml.IsUnsupported(err) {
		klog.Errorf("device %d memory info: %v", index, err)
	}

	if util, err := gpu.UtilizationRates(); err == nil {
		gauge(c.utilization, float64(util.Gpu))
		gauge(c.memUtilization, float64(util.Memory))
	} else if !nvml.IsUnsupported(err) {
		klog.Errorf("device %d utilization: %v", index, err)
	}

	if temp, err := gpu.Temperature(nvml.TemperatureGpu); err == nil {
		gauge(c.temperature, float64(temp))
	} else if !nvml.IsUnsupported(err) {
		klog.Errorf("device %d temperature: %v", index, err)
	}

	if milliwatts, err := gpu.PowerUsage(); err == nil {
		gauge(c.powerUsage, float64(milliwatts)/1000)
	} else if !nvml.IsUnsupported(err) {
		klog.Errorf("device %d power usage: %v", index, err)
	}

	if procs, err := gpu.ComputeRunningProcesses(); err == nil {
		gauge(c.processCount, float64(len(procs)))
	} else if !nvml.IsUnsupported(err) {
		klog.Errorf("device %d processes: %v", index, err)
	}
}
