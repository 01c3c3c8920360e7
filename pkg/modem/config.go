package modem

import (
	"fmt"
)

// Config is the parameter set shared by a sender/receiver pair. Both sides
// must be built from identical values; there is no runtime negotiation and a
// mismatched pair is undecodable.
type Config struct {
	Charset Charset

	BaseFreq float64 // frequency assigned to charset index 0
	StepFreq float64 // spacing between adjacent charset entries

	PreambleFreq  float64 // start marker, outside the charset range
	PostambleFreq float64 // end marker, outside the charset range

	// BoundaryDurationMultiplier scales the preamble/postamble duration
	// relative to ToneDuration. At least 1.5 so the receiver has lock-on
	// margin.
	BoundaryDurationMultiplier float64

	SampleRate   float64
	ToneDuration float64 // seconds per character tone

	Amplitude   float64 // peak amplitude in (0, 1]
	FadeSamples int     // linear ramp length at both ends of every tone

	Tolerance        float64 // max Hz deviation when matching a peak frequency
	EntropyThreshold float64 // spectral entropy above which a symbol is uncertain

	// BufferSize is the receive ring buffer capacity in samples.
	// 0 picks a default of five seconds of audio.
	BufferSize int
}

func DefaultConfig() Config {
	return Config{
		Charset:                    DefaultCharset,
		BaseFreq:                   500,
		StepFreq:                   40,
		PreambleFreq:               400,
		PostambleFreq:              3000,
		BoundaryDurationMultiplier: 1.5,
		SampleRate:                 44100,
		ToneDuration:               0.2,
		Amplitude:                  0.5,
		Tolerance:                  20,
		EntropyThreshold:           5.0,
	}
}

// ChunkSamples is the number of samples in one character tone, the
// receiver's unit of analysis.
func (c Config) ChunkSamples() int {
	return int(c.SampleRate * c.ToneDuration)
}

// BoundarySamples is the number of samples in the preamble or postamble.
func (c Config) BoundarySamples() int {
	return int(c.SampleRate * c.ToneDuration * c.BoundaryDurationMultiplier)
}

func (c Config) FrequencyMap() FrequencyMap {
	return FrequencyMap{
		Charset:  c.Charset,
		BaseFreq: c.BaseFreq,
		StepFreq: c.StepFreq,
	}
}

func (c Config) ringCapacity() int {
	if c.BufferSize > 0 {
		return c.BufferSize
	}
	return int(5 * c.SampleRate)
}

// Validate rejects a malformed configuration up front. Nothing in the
// streaming path checks these conditions again.
func (c Config) Validate() error {
	if err := c.Charset.validate(); err != nil {
		return err
	}
	if c.BaseFreq <= 0 || c.StepFreq <= 0 {
		return fmt.Errorf("modem: base frequency %g and step %g must be positive", c.BaseFreq, c.StepFreq)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("modem: sample rate %g must be positive", c.SampleRate)
	}
	if c.ToneDuration <= 0 {
		return fmt.Errorf("modem: tone duration %g must be positive", c.ToneDuration)
	}
	if c.Amplitude <= 0 || c.Amplitude > 1 {
		return fmt.Errorf("modem: amplitude %g must be in (0, 1]", c.Amplitude)
	}
	if c.BoundaryDurationMultiplier < 1.5 {
		return fmt.Errorf("modem: boundary duration multiplier %g must be at least 1.5", c.BoundaryDurationMultiplier)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("modem: tolerance %g must be positive", c.Tolerance)
	}
	if c.EntropyThreshold <= 0 {
		return fmt.Errorf("modem: entropy threshold %g must be positive", c.EntropyThreshold)
	}
	if c.FadeSamples < 0 || 2*c.FadeSamples > c.ChunkSamples() {
		return fmt.Errorf("modem: fade of %d samples does not fit in a %d sample tone", c.FadeSamples, c.ChunkSamples())
	}

	fm := c.FrequencyMap()
	nyquist := c.SampleRate / 2
	for _, f := range []float64{fm.MaxFreq(), c.PreambleFreq, c.PostambleFreq} {
		if f >= nyquist {
			return fmt.Errorf("modem: frequency %g Hz is at or above the Nyquist limit %g Hz", f, nyquist)
		}
	}

	// Boundary markers must stay clear of the character range so a marker
	// can never be matched as a character, tolerance included.
	lo, hi := fm.BaseFreq-c.Tolerance, fm.MaxFreq()+c.Tolerance
	for _, f := range []float64{c.PreambleFreq, c.PostambleFreq} {
		if f >= lo && f <= hi {
			return fmt.Errorf("modem: boundary marker %g Hz overlaps the character range [%g, %g] Hz", f, lo, hi)
		}
	}
	if diff := c.PreambleFreq - c.PostambleFreq; diff <= 2*c.Tolerance && diff >= -2*c.Tolerance {
		return fmt.Errorf("modem: preamble %g Hz and postamble %g Hz are not distinguishable at tolerance %g Hz", c.PreambleFreq, c.PostambleFreq, c.Tolerance)
	}

	if c.BufferSize > 0 && c.BufferSize < c.BoundarySamples()+c.ChunkSamples() {
		return fmt.Errorf("modem: buffer size %d cannot hold a boundary marker plus one tone", c.BufferSize)
	}
	return nil
}
