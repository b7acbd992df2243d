// SPDX-License-Identifier: EPL-2.0

package echo

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
	"time"
)

func TestLMS_Trace(t *testing.T) {
	t.Parallel()

	l := NewLMS(2, 0.1)
	feedback := []float32{1, 0}
	mic := []float32{1, 1}
	out := make([]float32, 2)

	if !l.ProcessFloat(out[:1], feedback[:1], mic[:1], 1) {
		t.Fatal("ProcessFloat() = false")
	}
	if want := []float32{0.2, 0}; !slices.Equal(l.Filter(), want) {
		t.Errorf("coefficients after 1 sample = %v, want %v", l.Filter(), want)
	}

	if !l.ProcessFloat(out[1:], feedback[1:], mic[1:], 1) {
		t.Fatal("ProcessFloat() = false")
	}
	if want := []float32{0.2, 0.2}; !slices.Equal(l.Filter(), want) {
		t.Errorf("coefficients after 2 samples = %v, want %v", l.Filter(), want)
	}
	if want := []float32{1, 1}; !slices.Equal(out, want) {
		t.Errorf("output = %v, want %v", out, want)
	}
}

func TestLMS_SilentFeedback(t *testing.T) {
	t.Parallel()

	l := NewLMS(16, 0.05)
	mic := []float32{0.1, -0.2, 0.3, 0.9, -1, 0}
	out := make([]float32, len(mic))

	l.ProcessFloat(out, make([]float32, len(mic)), mic, len(mic))

	if !slices.Equal(out, mic) {
		t.Errorf("output = %v, want the microphone signal %v", out, mic)
	}
	if slices.ContainsFunc(l.Filter(), func(c float32) bool { return c != 0 }) {
		t.Errorf("coefficients moved without feedback: %v", l.Filter())
	}
}

func TestLMS_Reset(t *testing.T) {
	t.Parallel()

	l := NewLMS(4, 0.1)
	train := []float32{0.5, -0.5, 0.25, 0.75}
	out := make([]float32, 4)
	l.ProcessFloat(out, train, train, 4)

	l.Reset()
	if l.Size() != 4 || l.Mu() != 0.1 {
		t.Errorf("Reset() changed size/mu to %d/%v", l.Size(), l.Mu())
	}
	if slices.ContainsFunc(l.Filter(), func(c float32) bool { return c != 0 }) {
		t.Errorf("coefficients after Reset = %v", l.Filter())
	}

	l.ProcessFloat(out[:1], []float32{0.9}, []float32{0.3}, 1)
	if out[0] != 0.3 {
		t.Errorf("first output after Reset = %v, want 0.3", out[0])
	}
}

func TestLMS_Resize(t *testing.T) {
	t.Parallel()

	l := NewLMS(4, 0.1)
	out := make([]float32, 4)
	l.ProcessFloat(out, []float32{1, 1, 1, 1}, []float32{1, 1, 1, 1}, 4)

	l.SetFilterSize(8)
	if l.Size() != 8 || len(l.Filter()) != 8 {
		t.Fatalf("Size() = %d, want 8", l.Size())
	}
	if slices.ContainsFunc(l.Filter(), func(c float32) bool { return c != 0 }) {
		t.Errorf("coefficients after resize = %v", l.Filter())
	}

	l.SetFilterDuration(16000, 4*time.Millisecond)
	if l.Size() != 64 {
		t.Errorf("SetFilterDuration(16000, 4ms) size = %d, want 64", l.Size())
	}

	l.SetFilterSize(-3)
	if l.Size() != 0 {
		t.Errorf("SetFilterSize(-3) size = %d, want 0", l.Size())
	}
}

func TestLMS_FilterIsCopy(t *testing.T) {
	t.Parallel()

	l := NewLMS(2, 0.1)
	l.ProcessFloat(make([]float32, 1), []float32{1}, []float32{1}, 1)

	c := l.Filter()
	c[0] = 42
	if l.Filter()[0] == 42 {
		t.Error("Filter() exposes internal coefficients")
	}
}

func TestLMS_ZeroTaps(t *testing.T) {
	t.Parallel()

	l := NewLMS(0, 0.1)
	mic := []float32{0.5, -0.5}
	out := make([]float32, 2)

	if !l.ProcessFloat(out, []float32{1, 1}, mic, 2) || !slices.Equal(out, mic) {
		t.Errorf("zero taps output = %v, want %v", out, mic)
	}
}

func TestLMS_InvalidLengths(t *testing.T) {
	t.Parallel()

	short := make([]float32, 2)
	full := make([]float32, 4)
	short16 := make([]int16, 2)
	full16 := make([]int16, 4)

	l := NewLMS(4, 0.1)
	tests := []struct {
		name string
		ok   bool
	}{
		{"short out", l.ProcessFloat(short, full, full, 4)},
		{"short feedback", l.ProcessFloat(full, short, full, 4)},
		{"short mic", l.ProcessFloat(full, full, short, 4)},
		{"negative n", l.ProcessFloat(full, full, full, -1)},
		{"short out16", l.Process16(short16, full16, full16, 4)},
		{"short feedback16", l.Process16(full16, short16, full16, 4)},
		{"short mic16", l.Process16(full16, full16, short16, 4)},
	}
	for _, tt := range tests {
		if tt.ok {
			t.Errorf("%s: returned true", tt.name)
		}
	}

	if !l.ProcessFloat(nil, nil, nil, 0) {
		t.Error("ProcessFloat(n=0) = false, want true")
	}

	// rejected calls leave the filter untouched
	out := make([]float32, 1)
	l.ProcessFloat(out, []float32{1}, []float32{0.25}, 1)
	if out[0] != 0.25 {
		t.Errorf("output = %v, want 0.25 from an untouched filter", out[0])
	}
}

func TestLMS_Process16(t *testing.T) {
	t.Parallel()

	l := NewLMS(8, 0.01)
	out := make([]int16, 3)
	l.Process16(out, []int16{0, 0, 0}, []int16{16384, -32768, 32767}, 3)
	if want := []int16{16384, -32768, 32767}; !slices.Equal(out, want) {
		t.Errorf("Process16() = %v, want %v", out, want)
	}

	// a large step drives the estimate past full scale
	s := NewLMS(1, 1)
	out = make([]int16, 2)
	s.Process16(out, []int16{32767, -32768}, []int16{32767, 32767}, 2)
	if out[1] != 32767 {
		t.Errorf("Process16() saturated sample = %d, want 32767", out[1])
	}
}

func TestLMS_InPlace(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	feedback := make([]float32, 256)
	mic := make([]float32, 256)
	for i := range feedback {
		feedback[i] = rng.Float32() - 0.5
		mic[i] = rng.Float32() - 0.5
	}

	a, b := NewLMS(16, 0.02), NewLMS(16, 0.02)
	want := make([]float32, len(mic))
	a.ProcessFloat(want, feedback, mic, len(mic))

	got := slices.Clone(mic)
	b.ProcessFloat(got, feedback, got, len(got))

	if !slices.Equal(got, want) {
		t.Error("in-place processing differs from separate buffers")
	}
}

func TestLMS_Converges(t *testing.T) {
	t.Parallel()

	path := []float32{0.6, -0.3, 0.1}
	const n = 20000

	rng := rand.New(rand.NewPCG(7, 11))
	feedback := make([]float32, n)
	for i := range feedback {
		feedback[i] = rng.Float32() - 0.5
	}
	mic := make([]float32, n)
	for i := range mic {
		for k, h := range path {
			if i-k >= 0 {
				mic[i] += h * feedback[i-k]
			}
		}
	}

	l := NewLMS(8, 0.02)
	out := make([]float32, n)
	l.ProcessFloat(out, feedback, mic, n)

	c := l.Filter()
	for k := range c {
		var want float32
		if k < len(path) {
			want = path[k]
		}
		if math.Abs(float64(c[k]-want)) > 1e-3 {
			t.Errorf("c[%d] = %v, want %v", k, c[k], want)
		}
	}

	var residual float64
	for _, e := range out[n-1000:] {
		residual += float64(e * e)
	}
	if residual > 1e-6 {
		t.Errorf("residual energy = %v over the last 1000 samples", residual)
	}
}

func TestTapsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate int
		d    time.Duration
		want int
	}{
		{16000, 64 * time.Millisecond, 1024},
		{8000, 32 * time.Millisecond, 256},
		{44100, 10 * time.Millisecond, 441},
		{48000, 0, 0},
	}
	for _, tt := range tests {
		if got := TapsFor(tt.rate, tt.d); got != tt.want {
			t.Errorf("TapsFor(%d, %s) = %d, want %d", tt.rate, tt.d, got, tt.want)
		}
	}
}

func TestLMS_SetMu(t *testing.T) {
	t.Parallel()

	l := NewLMS(DefaultFilterSize, DefaultMu)
	if l.Size() != 256 || l.Mu() != 0.03 {
		t.Errorf("defaults = %d/%v, want 256/0.03", l.Size(), l.Mu())
	}
	l.SetMu(0.5)
	if l.Mu() != 0.5 {
		t.Errorf("Mu() = %v, want 0.5", l.Mu())
	}
}

func BenchmarkLMS_ProcessFloat1024(b *testing.B) {
	l := NewLMS(1024, 0.001)
	rng := rand.New(rand.NewPCG(3, 4))
	feedback := make([]float32, 160)
	mic := make([]float32, 160)
	for i := range feedback {
		feedback[i] = rng.Float32() - 0.5
		mic[i] = 0.3 * feedback[i]
	}
	out := make([]float32, 160)

	b.ReportAllocs()
	for b.Loop() {
		l.ProcessFloat(out, feedback, mic, len(out))
	}
}

func BenchmarkLMS_Process16(b *testing.B) {
	l := NewLMS(256, 0.01)
	feedback := make([]int16, 160)
	mic := make([]int16, 160)
	for i := range feedback {
		feedback[i] = int16(i * 100)
		mic[i] = int16(i * 30)
	}
	out := make([]int16, 160)

	b.ReportAllocs()
	for b.Loop() {
		l.Process16(out, feedback, mic, len(out))
	}
}
