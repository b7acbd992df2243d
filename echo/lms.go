// SPDX-License-Identifier: EPL-2.0

package echo

import (
	"time"

	"github.com/ik5/audalgo/utils"
)

const (
	// DefaultFilterSize is the number of taps of a new filter.
	DefaultFilterSize = 256

	// DefaultMu is the step size of a new filter.
	DefaultMu float32 = 0.03
)

// LMS is a least mean squares adaptive FIR filter used as an echo canceller.
//
// Given the signal sent to the loudspeaker x(n) (feedback) and the signal
// captured by the microphone d(n), it estimates the echo y(n) = Σ c[i]·x(n-i)
// and outputs e(n) = d(n) - y(n), adapting c[i] += 2·µ·e(n)·x(n-i) after
// every sample.
//
// Convergence requires 0 < µ·L·P < 1, P being the feedback power. µ is not
// checked: a too large value makes the coefficients diverge and the output
// overflow.
//
// LMS is not safe for concurrent use.
type LMS struct {
	coeffs  []float32
	history []float32 // ring, newest sample at history[head]
	head    int
	mu      float32
}

func NewLMS(size int, mu float32) *LMS {
	l := &LMS{mu: mu}
	l.SetFilterSize(size)
	return l
}

// Reset zeroes the coefficients and the history, keeping size and µ.
func (l *LMS) Reset() {
	clear(l.coeffs)
	clear(l.history)
	l.head = 0
}

// SetFilterSize resizes the filter to n taps and resets it.
func (l *LMS) SetFilterSize(n int) {
	n = max(n, 0)
	l.coeffs = make([]float32, n)
	l.history = make([]float32, n)
	l.head = 0
}

// SetFilterDuration sizes the filter to cover d at sampleRate.
func (l *LMS) SetFilterDuration(sampleRate int, d time.Duration) {
	l.SetFilterSize(TapsFor(sampleRate, d))
}

// TapsFor is the number of samples d lasts at sampleRate.
func TapsFor(sampleRate int, d time.Duration) int {
	return int(int64(sampleRate) * int64(d) / int64(time.Second))
}

func (l *LMS) SetMu(mu float32) { l.mu = mu }
func (l *LMS) Mu() float32      { return l.mu }
func (l *LMS) Size() int        { return len(l.coeffs) }

// Filter returns a copy of the current coefficients.
func (l *LMS) Filter() []float32 {
	return append([]float32(nil), l.coeffs...)
}

// ProcessFloat cancels the echo of feedback in mic for n samples in [-1,1]
// and writes the residual to out. It returns false without touching any state
// when a slice holds fewer than n samples.
func (l *LMS) ProcessFloat(out, feedback, mic []float32, n int) bool {
	if n < 0 || len(out) < n || len(feedback) < n || len(mic) < n {
		return false
	}

	for i := range n {
		out[i] = l.step(feedback[i], mic[i])
	}
	return true
}

// Process16 is ProcessFloat on 16-bit samples. Samples are normalized by
// 1/32768 and the residual is saturated back to the int16 range.
func (l *LMS) Process16(out, feedback, mic []int16, n int) bool {
	if n < 0 || len(out) < n || len(feedback) < n || len(mic) < n {
		return false
	}

	for i := range n {
		e := l.step(utils.Int16ToFloat32(feedback[i]), utils.Int16ToFloat32(mic[i]))
		out[i] = utils.Float32ToInt16(e)
	}
	return true
}

// step runs one iteration of the filter and returns e(n).
func (l *LMS) step(x, d float32) float32 {
	size := len(l.coeffs)
	if size == 0 {
		return d
	}

	l.head--
	if l.head < 0 {
		l.head = size - 1
	}
	l.history[l.head] = x

	// Logical history h[i] = history[(head+i)%size]: the ring splits into
	// history[head:] for taps [0, size-head) and history[:head] for the rest.
	split := size - l.head
	newer, older := l.history[l.head:], l.history[:l.head]
	cNewer, cOlder := l.coeffs[:split], l.coeffs[split:]

	var y float32
	for i, h := range newer {
		y += cNewer[i] * h
	}
	for i, h := range older {
		y += cOlder[i] * h
	}

	e := d - y

	g := 2 * l.mu * e
	for i, h := range newer {
		cNewer[i] += g * h
	}
	for i, h := range older {
		cOlder[i] += g * h
	}

	return e
}
