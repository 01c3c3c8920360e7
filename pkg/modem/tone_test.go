package modem

import (
	"math"
	"reflect"
	"testing"
)

func TestToneDeterministic(t *testing.T) {

	cfg := ToneConfig{
		Amplitude:   0.5,
		Freq:        1000,
		SampleRate:  8000,
		Duration:    0.05,
		FadeSamples: 50,
	}

	a := cfg.New()
	b := cfg.New()

	if len(a) != 400 {
		t.Errorf("Expected 400 samples, but got %d", len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Expected identical renders")
	}
}

func TestToneAmplitudeAndFade(t *testing.T) {

	cfg := ToneConfig{
		Amplitude:   0.5,
		Freq:        1000,
		SampleRate:  8000,
		Duration:    0.05,
		FadeSamples: 50,
	}

	signal := cfg.New()

	for i, s := range signal {
		if math.Abs(s) > cfg.Amplitude {
			t.Fatalf("sample %d exceeds the amplitude: %g", i, s)
		}
	}

	if signal[0] != 0 || signal[len(signal)-1] != 0 {
		t.Errorf("Expected faded endpoints, but got %g and %g", signal[0], signal[len(signal)-1])
	}
}

func TestToneFadeClamped(t *testing.T) {

	cfg := ToneConfig{
		Amplitude:  0.5,
		Freq:       1000,
		SampleRate: 8000,
		Duration:   0.05,
	}
	cfg.FadeSamples = 1000 // longer than the tone itself

	if n := len(cfg.New()); n != 400 {
		t.Errorf("Expected 400 samples, but got %d", n)
	}
}
