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
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"nvml-guard/pkg/nvml"
)

// migProfiles maps the canonical profile enumerants to display names.
var migProfiles = []struct {
	id   nvml.GpuInstanceProfileID
	name string
}{
	{nvml.GpuInstanceProfile1Slice, "1-slice"},
	{nvml.GpuInstanceProfile2Slice, "2-slice"},
	{nvml.GpuInstanceProfile3Slice, "3-slice"},
	{nvml.GpuInstanceProfile4Slice, "4-slice"},
	{nvml.GpuInstanceProfile6Slice, "6-slice"},
	{nvml.GpuInstanceProfile7Slice, "7-slice"},
	{nvml.GpuInstanceProfile8Slice, "8-slice"},
}

func (t *tool) migCommand() *cli.Command {
	return &cli.Command{
		Name:      "mig",
		Usage:     "Show the MIG mode and instance profiles of a GPU",
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

			out := outWriter(cmd)
			current, pending, err := dev.MigMode()
			if nvml.IsUnsupported(err) {
				fmt.Fprintln(out, "MIG is not supported on this device")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "MIG mode: %s", migModeString(current))
			if pending != current {
				fmt.Fprintf(out, " (pending %s)", migModeString(pending))
			}
			fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PROFILE\tID\tINSTANCES\tSLICES\tMEMORY")
			for _, p := range migProfiles {
				info, err := dev.GpuInstanceProfileInfo(p.id)
				if nvml.IsUnsupported(err) || nvml.IsNotFound(err) {
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d MiB\n",
					p.name, info.ID, info.InstanceCount, info.SliceCount, info.MemorySizeMB)
			}
			return w.Flush()
		},
	}
}

func migModeString(m nvml.MigMode) string {
	if m == nvml.MigEnabled {
		return "enabled"
	}
	return "disabled"
}
