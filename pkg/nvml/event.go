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

// EventSet is an owning handle for a native event set. Free moves it
// permanently into the freed state; every later method call fails
// without reaching the native library. The handle is safe for
// concurrent use, but a Wait in flight when Free is called races with
// the native teardown exactly as it would in the C API.
type EventSet struct {
	lib *Library

	mu    sync.Mutex
	set   nvmlEventSet
	freed bool
}

// NewEventSet creates an empty event set. Devices are subscribed with
// Device.RegisterEvents.
func (l *Library) NewEventSet() (*EventSet, error) {
	const op = "EventSetCreate"
	if err := l.checkOpen(op); err != nil {
		return nil, err
	}
	r := l.resolve(opEventSetCreate)
	if r.err != nil {
		return nil, r.err
	}

	var set nvmlEventSet
	if err := errorOf(op, l.native.nvmlEventSetCreate(&set)); err != nil {
		return nil, err
	}
	return &EventSet{lib: l, set: set}, nil
}

// Wait blocks until an event registered on the set fires or the timeout
// elapses, whichever is first. A timeout surfaces as KindTimeout. The
// lock is not held across the native wait, so other goroutines can
// still inspect or free the set.
func (e *EventSet) Wait(timeoutMs uint32) (EventData, error) {
	const op = "EventSetWait"
	e.mu.Lock()
	if e.freed {
		e.mu.Unlock()
		return EventData{}, errInvalidHandle(op)
	}
	set := e.set
	e.mu.Unlock()

	if err := e.lib.checkOpen(op); err != nil {
		return EventData{}, err
	}
	r := e.lib.resolve(opEventSetWait)
	if r.err != nil {
		return EventData{}, r.err
	}

	switch r.suffix {
	case "_v2":
		var data nvmlEventDataV2
		if err := errorOf(op, e.lib.native.nvmlEventSetWait_v2(set, &data, timeoutMs)); err != nil {
			return EventData{}, err
		}
		return decodeEventDataV2(&data), nil
	default:
		var data nvmlEventDataV1
		if err := errorOf(op, e.lib.native.nvmlEventSetWait(set, &data, timeoutMs)); err != nil {
			return EventData{}, err
		}
		return decodeEventDataV1(&data), nil
	}
}

// Free releases the event set. The handle is unusable afterwards even
// when the native call fails.
func (e *EventSet) Free() error {
	const op = "EventSetFree"
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.freed {
		return errInvalidHandle(op)
	}
	if err := e.lib.checkOpen(op); err != nil {
		return err
	}
	r := e.lib.resolve(opEventSetFree)
	if r.err != nil {
		return r.err
	}

	e.freed = true
	return errorOf(op, e.lib.native.nvmlEventSetFree(e.set))
}
