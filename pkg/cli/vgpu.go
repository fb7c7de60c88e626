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

func (t *tool) vgpuCommand() *cli.Command {
	return &cli.Command{
		Name:      "vgpu",
		Usage:     "Show the vGPU types and instances of a GPU",
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
			supported, err := dev.SupportedVgpus()
			if nvml.IsUnsupported(err) {
				fmt.Fprintln(out, "vGPU is not supported on this device")
				return nil
			}
			if err != nil {
				return err
			}
			creatable, err := dev.CreatableVgpus()
			if err != nil && !nvml.IsUnsupported(err) {
				return err
			}
			creatableIDs := make(map[uint32]bool, len(creatable))
			for _, ct := range creatable {
				creatableIDs[ct.ID()] = true
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tNAME\tMAX\tCREATABLE")
			for _, vt := range supported {
				name, err := vt.Name()
				if err != nil {
					return err
				}
				maxInstances, err := vt.MaxInstances(dev)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%d\t%s\t%d\t%v\n", vt.ID(), name, maxInstances, creatableIDs[vt.ID()])
			}
			if err := w.Flush(); err != nil {
				return err
			}

			active, err := dev.ActiveVgpus()
			if err != nil && !nvml.IsUnsupported(err) {
				return err
			}
			fmt.Fprintf(out, "Active instances: %d\n", len(active))
			for _, vi := range active {
				uuid, err := vi.UUID()
				if err != nil {
					return err
				}
				vmID, idType, err := vi.VmID()
				if err != nil {
					return err
				}
				kind := "domain"
				if idType == nvml.VgpuVmIDUUID {
					kind = "uuid"
				}
				fmt.Fprintf(out, "  %d: %s, vm %s (%s)\n", vi.ID(), uuid, vmID, kind)
			}
			return nil
		},
	}
}
