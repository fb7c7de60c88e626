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

package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"nvml-guard/pkg/nvml"
)

func (t *tool) devicesCommand() *cli.Command {
	return &cli.Command{
		Name:  "devices",
		Usage: "List the GPUs the driver manages",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lib, err := t.open()
			if err != nil {
				return err
			}
			defer func() { _ = lib.Shutdown() }()

			version, err := lib.DriverVersion()
			if err != nil {
				return err
			}
			count, err := lib.DeviceCount()
			if err != nil {
				return err
			}
			out := outWriter(cmd)
			fmt.Fprintf(out, "Driver %s, %d device(s)\n", version, count)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "INDEX\tNAME\tUUID\tMEMORY")
			for i := 0; i < count; i++ {
				dev, err := lib.DeviceByIndex(i)
				if err != nil {
					return err
				}
				name, err := dev.Name()
				if err != nil {
					return err
				}
				uuid, err := dev.UUID()
				if err != nil {
					return err
				}
				mem, err := dev.MemoryInfo()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, name, uuid, formatBytes(mem.Total))
			}
			return w.Flush()
		},
	}
}

func (t *tool) deviceCommand() *cli.Command {
	return &cli.Command{
		Name:      "device",
		Usage:     "Show one GPU in detail",
		ArgsUsage: "<index>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			index, err := indexArg(cmd)
			if err != nil {
				return err
			}
			lib, err := t.open()
			if err != nil {
				return err
			}
			defer func() { _ = lib.Shutdown() }()

			dev, err := lib.DeviceByIndex(index)
			if err != nil {
				return err
			}
			return printDevice(outWriter(cmd), dev)
		},
	}
}

func printDevice(out io.Writer, dev nvml.Device) error {
	name, err := dev.Name()
	if err != nil {
		return err
	}
	uuid, err := dev.UUID()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Name:   %s\n", name)
	fmt.Fprintf(out, "UUID:   %s\n", uuid)

	if pci, err := dev.PciInfo(); err == nil {
		fmt.Fprintf(out, "PCI:    %s (device id %08x)\n", pci.BusID, pci.PciDeviceID)
	} else if !nvml.IsUnsupported(err) {
		return err
	}
	if mem, err := dev.MemoryInfo(); err == nil {
		fmt.Fprintf(out, "Memory: %s used / %s total", formatBytes(mem.Used), formatBytes(mem.Total))
		if mem.Reserved > 0 {
			fmt.Fprintf(out, " (%s reserved)", formatBytes(mem.Reserved))
		}
		fmt.Fprintln(out)
	} else if !nvml.IsUnsupported(err) {
		return err
	}
	if util, err := dev.UtilizationRates(); err == nil {
		fmt.Fprintf(out, "Util:   %d%% gpu, %d%% memory\n", util.Gpu, util.Memory)
	} else if !nvml.IsUnsupported(err) {
		return err
	}
	if temp, err := dev.Temperature(nvml.TemperatureGpu); err == nil {
		fmt.Fprintf(out, "Temp:   %d C\n", temp)
	} else if !nvml.IsUnsupported(err) {
		return err
	}
	if power, err := dev.PowerUsage(); err == nil {
		fmt.Fprintf(out, "Power:  %.1f W\n", float64(power)/1000)
	} else if !nvml.IsUnsupported(err) {
		return err
	}

	procs, err := dev.ComputeRunningProcesses()
	switch {
	case err == nil:
		fmt.Fprintf(out, "Compute processes: %d\n", len(procs))
		for _, p := range procs {
			fmt.Fprintf(out, "  pid %d, %s", p.Pid, formatBytes(p.UsedGpuMemory))
			if p.GpuInstanceID != nvml.NoMigInstanceID {
				fmt.Fprintf(out, ", gi %d/ci %d", p.GpuInstanceID, p.ComputeInstanceID)
			}
			fmt.Fprintln(out)
		}
	case nvml.IsUnsupported(err), nvml.IsKind(err, nvml.KindInsufficientPermissions):
		// Not every device or caller can enumerate processes.
	default:
		return err
	}
	return nil
}

func formatBytes(n uint64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
		gib = 1 << 30
	)
	switch {
	case n >= gib:
		return fmt.Sprintf("%.1f GiB", float64(n)/gib)
	case n >= mib:
		return fmt.Sprintf("%.1f MiB", float64(n)/mib)
	case n >= kib:
		return fmt.Sprintf("%.1f KiB", float64(n)/kib)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
