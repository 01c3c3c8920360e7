package modem

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Analysis is the spectral summary of one chunk.
type Analysis struct {
	PeakFreq float64 // dominant frequency in Hz
	Entropy  float64 // Shannon entropy of the normalized magnitude spectrum
}

const entropyEpsilon = 1e-12

// Analyze applies a Hann window to the chunk, computes its real-input
// spectrum and summarizes it. Low entropy means the energy sits in one
// narrow peak; noise scores high and silence is +Inf. Pure: no state is
// kept between calls.
func Analyze(chunk []float64, sampleRate float64) Analysis {
	n := len(chunk)
	if n == 0 {
		return Analysis{Entropy: math.Inf(1)}
	}

	windowed := window.Hann(append([]float64(nil), chunk...))

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, windowed)

	mags := make([]float64, len(coeffs))
	total := 0.0
	peak := 0
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
		total += mags[i]
		if mags[i] > mags[peak] {
			peak = i
		}
	}

	a := Analysis{PeakFreq: fft.Freq(peak) * sampleRate}
	if total == 0 {
		a.Entropy = math.Inf(1)
		return a
	}
	for _, m := range mags {
		p := m / total
		a.Entropy -= p * math.Log2(p+entropyEpsilon)
	}
	return a
}
