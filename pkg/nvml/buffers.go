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

// Variable-length queries follow the library's size-negotiation
// protocol: call with a zero-length buffer, read the required element
// count back from the count argument, allocate, call again. A healthy
// driver needs exactly one resize; the loop below is bounded so a
// misbehaving driver surfaces an insufficient-size error instead of
// spinning.

// maxSizeRetries bounds how many sized attempts follow the initial
// zero-length probe.
const maxSizeRetries = 2

// queryList drives the protocol for an array-returning entry point.
// call must forward count and the first element of buf (nil on the
// probe) to the native function, which updates count in place.
func queryList[T any](op string, call func(count *uint32, buf *T) Return) ([]T, error) {
	var count uint32
	switch ret := call(&count, nil); ret {
	case Success:
		return nil, nil
	case ErrorInsufficientSize:
		// count now holds the required capacity.
	default:
		return nil, errorOf(op, ret)
	}

	for attempt := 0; attempt < maxSizeRetries; attempt++ {
		if count == 0 {
			return nil, nil
		}
		buf := make([]T, count)
		switch ret := call(&count, &buf[0]); ret {
		case Success:
			if int(count) < len(buf) {
				buf = buf[:count]
			}
			return buf, nil
		case ErrorInsufficientSize:
			// The population grew between calls; count was updated,
			// try once more with the larger buffer.
		default:
			return nil, errorOf(op, ret)
		}
	}
	return nil, errorOf(op, ErrorInsufficientSize)
}

// queryString reads a fixed-capacity native string into an owned Go
// string.
func queryString(op string, size uint32, call func(buf *byte, length uint32) Return) (string, error) {
	buf := make([]byte, size)
	if err := errorOf(op, call(&buf[0], size)); err != nil {
		return "", err
	}
	return cstr(buf), nil
}

// querySizedString is the in/out-size flavor used by entry points that
// report the required capacity through the size argument.
func querySizedString(op string, size uint32, call func(buf *byte, size *uint32) Return) (string, error) {
	for attempt := 0; attempt < maxSizeRetries; attempt++ {
		buf := make([]byte, size)
		switch ret := call(&buf[0], &size); ret {
		case Success:
			return cstr(buf), nil
		case ErrorInsufficientSize:
			if size <= uint32(len(buf)) {
				// The native side failed to grow its requirement;
				// don't loop on a contract violation.
				return "", errorOf(op, ret)
			}
		default:
			return "", errorOf(op, ret)
		}
	}
	return "", errorOf(op, ErrorInsufficientSize)
}
