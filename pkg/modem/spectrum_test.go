package modem

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestAnalyzePeak(t *testing.T) {

	const (
		SAMPLE_RATE = 8000
		FREQ        = 1000 // an exact FFT bin for a 400 sample chunk
	)

	chunk := ToneConfig{
		Amplitude:  0.5,
		Freq:       FREQ,
		SampleRate: SAMPLE_RATE,
		Duration:   0.05,
	}.New()

	a := Analyze(chunk, SAMPLE_RATE)
	if math.Abs(a.PeakFreq-FREQ) > 1e-6 {
		t.Errorf("Expected a peak at %d Hz, but got %g", FREQ, a.PeakFreq)
	}
	if a.Entropy >= 5.0 {
		t.Errorf("Expected low entropy for a pure tone, but got %g", a.Entropy)
	}
}

func TestAnalyzeNoiseEntropy(t *testing.T) {

	rng := rand.New(rand.NewSource(1))
	chunk := make([]float64, 400)
	for i := range chunk {
		chunk[i] = rng.Float64() - 0.5
	}

	a := Analyze(chunk, 8000)
	if a.Entropy <= 5.0 {
		t.Errorf("Expected high entropy for noise, but got %g", a.Entropy)
	}
}

func TestAnalyzeSilence(t *testing.T) {

	if a := Analyze(make([]float64, 400), 8000); !math.IsInf(a.Entropy, 1) {
		t.Errorf("Expected infinite entropy for silence, but got %g", a.Entropy)
	}
	if a := Analyze(nil, 8000); !math.IsInf(a.Entropy, 1) {
		t.Errorf("Expected infinite entropy for an empty chunk, but got %g", a.Entropy)
	}
}
