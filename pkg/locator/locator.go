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

// Package locator finds the management library on the host. Container
// runtimes and driver installers place libnvidia-ml.so.1 in a handful
// of well-known directories; on hosts where the driver container starts
// after the workload, the library appears some time after boot.
package locator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"
)

// SharedObjectName is the soname the driver installs.
const SharedObjectName = "libnvidia-ml.so.1"

// DefaultSearchPaths lists the directories driver installers and driver
// containers are known to use, in search order.
var DefaultSearchPaths = []string{
	"/usr/lib/x86_64-linux-gnu",
	"/usr/lib/aarch64-linux-gnu",
	"/usr/lib64",
	"/usr/lib",
	"/run/nvidia/driver/usr/lib/x86_64-linux-gnu",
	"/run/nvidia/driver/usr/lib64",
	"/home/kubernetes/bin/nvidia/lib64",
}

// Find returns the full path of the first library found in the given
// directories, or DefaultSearchPaths when none are given.
func Find(dirs ...string) (string, error) {
	if len(dirs) == 0 {
		dirs = DefaultSearchPaths
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, SharedObjectName)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return path, nil
	}
	return "", fmt.Errorf("locator: %s not found in %v", SharedObjectName, dirs)
}

// WaitForLibrary blocks until the library appears in one of the given
// directories (or DefaultSearchPaths) and returns its full path. It
// returns immediately when the library is already present. The wait is
// bounded only by ctx.
func WaitForLibrary(ctx context.Context, dirs ...string) (string, error) {
	if len(dirs) == 0 {
		dirs = DefaultSearchPaths
	}
	if path, err := Find(dirs...); err == nil {
		return path, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return "", fmt.Errorf("locator: unable to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			// Directories that do not exist yet cannot be watched;
			// installers create the library in place, not the dir.
			klog.V(2).Infof("not watching %s: %v", dir, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		return "", fmt.Errorf("locator: no watchable directories in %v", dirs)
	}

	// The library may have appeared between the initial probe and the
	// watch registration.
	if path, err := Find(dirs...); err == nil {
		return path, nil
	}

	klog.Infof("waiting for %s in %d directories", SharedObjectName, watched)
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return "", fmt.Errorf("locator: watcher closed")
			}
			if filepath.Base(event.Name) != SharedObjectName {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if _, err := os.Stat(event.Name); err != nil {
				continue
			}
			klog.Infof("found %s", event.Name)
			return event.Name, nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return "", fmt.Errorf("locator: watcher closed")
			}
			klog.Errorf("watch error: %v", err)
		}
	}
}
