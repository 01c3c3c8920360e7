package modem

// Modulator renders text messages as tone frames:
// preamble, one tone per character, checksum tone, postamble.
type Modulator struct {
	Config Config

	tonebank  map[rune][]float64
	preamble  []float64
	postamble []float64
}

func NewModulator(cfg Config) (*Modulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Modulator{Config: cfg}
	fm := cfg.FrequencyMap()

	m.tonebank = make(map[rune][]float64, cfg.Charset.Len())
	for _, ch := range string(cfg.Charset) {
		freq, _ := fm.FrequencyOf(ch)
		m.tonebank[ch] = ToneConfig{
			Amplitude:   cfg.Amplitude,
			Freq:        freq,
			SampleRate:  cfg.SampleRate,
			Duration:    cfg.ToneDuration,
			FadeSamples: cfg.FadeSamples,
		}.New()
	}

	boundary := ToneConfig{
		Amplitude:   cfg.Amplitude,
		SampleRate:  cfg.SampleRate,
		Duration:    cfg.ToneDuration * cfg.BoundaryDurationMultiplier,
		FadeSamples: cfg.FadeSamples,
	}
	boundary.Freq = cfg.PreambleFreq
	m.preamble = boundary.New()
	boundary.Freq = cfg.PostambleFreq
	m.postamble = boundary.New()

	return m, nil
}

// Modulate builds the sample sequence for one message. Every character must
// be in the charset; the checksum covers the original message only.
func (m *Modulator) Modulate(text string) ([]float64, error) {
	chars := []rune(text)
	for _, ch := range chars {
		if _, ok := m.tonebank[ch]; !ok {
			return nil, UnsupportedCharacterError{Char: ch}
		}
	}
	chars = append(chars, m.Config.Charset.ChecksumChar(text))

	chunk := m.Config.ChunkSamples()
	signal := make([]float64, 0, 2*len(m.preamble)+len(chars)*chunk)
	signal = append(signal, m.preamble...)
	for _, ch := range chars {
		signal = append(signal, m.tonebank[ch]...)
	}
	signal = append(signal, m.postamble...)
	return signal, nil
}
