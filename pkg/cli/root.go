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

// Package cli implements the nvmlctl command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/urfave/cli/v3"
	"k8s.io/klog/v2"

	"nvml-guard/pkg/locator"
	"nvml-guard/pkg/nvml"
)

// Execute runs the root command with signal-driven cancellation. It is
// called by main.main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		klog.Errorf("%v", err)
		os.Exit(1)
	}
}

// tool carries the configuration shared by all subcommands.
type tool struct {
	configPath string
	cfg        Config
}

// New builds the nvmlctl root command.
func New() *cli.Command {
	t := &tool{cfg: DefaultConfig()}

	return &cli.Command{
		Name:  "nvmlctl",
		Usage: "inspect NVIDIA GPUs through the management library",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to a YAML config file",
				Destination: &t.configPath,
			},
			&cli.StringFlag{
				Name:        "library",
				Aliases:     []string{"l"},
				Usage:       "path to " + locator.SharedObjectName + " (overrides discovery)",
				Destination: &t.cfg.LibraryPath,
			},
			&cli.StringFlag{
				Name:        "driver-constraint",
				Usage:       "semver constraint the driver version must satisfy",
				Destination: &t.cfg.DriverConstraint,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if t.configPath == "" {
				return ctx, nil
			}
			cfg, err := LoadConfig(t.configPath)
			if err != nil {
				return ctx, err
			}
			// Flags win over the file.
			if cmd.IsSet("library") {
				cfg.LibraryPath = t.cfg.LibraryPath
			}
			if cmd.IsSet("driver-constraint") {
				cfg.DriverConstraint = t.cfg.DriverConstraint
			}
			t.cfg = cfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			t.devicesCommand(),
			t.deviceCommand(),
			t.migCommand(),
			t.vgpuCommand(),
			t.exportCommand(),
		},
	}
}

// open loads and initializes the management library per the effective
// configuration. The caller shuts the returned library down.
func (t *tool) open() (*nvml.Library, error) {
	path := t.cfg.LibraryPath
	if path == "" {
		found, err := locator.Find(t.cfg.SearchPaths...)
		if err != nil {
			return nil, err
		}
		path = found
	}
	klog.V(2).Infof("loading %s", path)

	lib, err := nvml.New(nvml.WithLibraryPath(path))
	if err != nil {
		return nil, err
	}
	if err := lib.Init(); err != nil {
		return nil, err
	}
	if t.cfg.DriverConstraint != "" {
		if err := lib.VerifyDriverVersion(t.cfg.DriverConstraint); err != nil {
			_ = lib.Shutdown()
			return nil, err
		}
	}
	return lib, nil
}

// outWriter returns the writer command output goes to. Tests set a
// writer on the root command; otherwise output goes to stdout.
func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// indexArg parses the positional device index argument.
func indexArg(cmd *cli.Command) (int, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("a device index is required")
	}
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid device index %q", arg)
	}
	return index, nil
}
