package modem

import (
	"errors"
	"testing"
)

func TestModulateFrameLayout(t *testing.T) {

	cfg := testConfig()
	modulator, err := NewModulator(cfg)
	if err != nil {
		t.Fatal(err)
	}

	signal, err := modulator.Modulate("HELLO")
	if err != nil {
		t.Fatal(err)
	}

	// preamble + 5 characters + checksum + postamble
	expected := 2*cfg.BoundarySamples() + 6*cfg.ChunkSamples()
	if len(signal) != expected {
		t.Errorf("Expected %d samples, but got %d", expected, len(signal))
	}
}

func TestModulateEmptyMessage(t *testing.T) {

	cfg := testConfig()
	modulator, err := NewModulator(cfg)
	if err != nil {
		t.Fatal(err)
	}

	signal, err := modulator.Modulate("")
	if err != nil {
		t.Fatal(err)
	}

	// the empty message still carries its checksum tone
	expected := 2*cfg.BoundarySamples() + cfg.ChunkSamples()
	if len(signal) != expected {
		t.Errorf("Expected %d samples, but got %d", expected, len(signal))
	}
}

func TestModulateUnsupportedCharacter(t *testing.T) {

	modulator, err := NewModulator(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	_, err = modulator.Modulate("hello")
	var unsupported UnsupportedCharacterError
	if !errors.As(err, &unsupported) {
		t.Errorf("Expected UnsupportedCharacterError, but got %v", err)
	}
}
