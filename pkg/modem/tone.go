package modem

import "math"

// ToneConfig describes one fixed-frequency tone. New renders it; identical
// configs always render identical samples.
type ToneConfig struct {
	Amplitude   float64
	Freq        float64
	SampleRate  float64
	Duration    float64
	FadeSamples int
}

func (p ToneConfig) New() []float64 {
	size := int(p.SampleRate * p.Duration)
	signal := make([]float64, size)
	for i := 0; i < size; i++ {
		t := float64(i) / p.SampleRate
		signal[i] = p.Amplitude * math.Sin(2*math.Pi*p.Freq*t)
	}

	// linear ramps against clicks at tone boundaries
	fade := p.FadeSamples
	if 2*fade > size {
		fade = size / 2
	}
	for i := 0; i < fade; i++ {
		g := float64(i) / float64(fade)
		signal[i] *= g
		signal[size-1-i] *= g
	}
	return signal
}
