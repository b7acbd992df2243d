// SPDX-License-Identifier: EPL-2.0

// Package echo provides an adaptive acoustic echo canceller.
//
// # LMS Filter
//
// LMS estimates the path from the loudspeaker to the microphone with a FIR
// filter adapted by least mean squares after every sample:
//
//	x(n) feedback   ----o----> [ c ] ----> y(n)
//	                    |                   |
//	d(n) microphone ----|------------> d(n) - y(n) ----> e(n) output
//	                    |                   |
//	                    o---> c += 2·µ·e(n)·x(n) <---o
//
// Both 16-bit and float entry points are provided:
//
//	f := echo.NewLMS(1024, 0.01)
//	f.ProcessFloat(out, played, captured, len(out))
//
// The filter keeps its history in a ring buffer, so a sample costs two
// passes over the taps and no shifting. The cost is still O(taps) per sample,
// which makes the filter length the main real-time budget knob:
//
//	f.SetFilterDuration(16000, 64*time.Millisecond) // 1024 taps
//
// Resizing resets the filter. The step size is not validated; the usual
// stability bound is 0 < µ·taps·power < 1.
//
// # Canceller
//
// Canceller wires the filter between two mono Sources of the same rate and is
// itself a Source of the echo-free signal:
//
//	c, err := echo.NewCanceller(mic, loudspeaker,
//	    echo.WithFilterLength(32*time.Millisecond),
//	    echo.WithMu(0.005),
//	)
package echo
