package modem

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestConfigChunkSamples(t *testing.T) {
	cfg := testConfig()
	if chunk := cfg.ChunkSamples(); chunk != 400 {
		t.Errorf("Expected 400, but got %d", chunk)
	}
	if boundary := cfg.BoundarySamples(); boundary != 600 {
		t.Errorf("Expected 600, but got %d", boundary)
	}
}

func TestConfigValidateRejects(t *testing.T) {

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty charset", func(c *Config) { c.Charset = "" }},
		{"duplicate charset entry", func(c *Config) { c.Charset = "ABA" }},
		{"zero base frequency", func(c *Config) { c.BaseFreq = 0 }},
		{"negative step", func(c *Config) { c.StepFreq = -40 }},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"zero tone duration", func(c *Config) { c.ToneDuration = 0 }},
		{"zero amplitude", func(c *Config) { c.Amplitude = 0 }},
		{"amplitude above one", func(c *Config) { c.Amplitude = 1.5 }},
		{"boundary multiplier too small", func(c *Config) { c.BoundaryDurationMultiplier = 1.2 }},
		{"zero tolerance", func(c *Config) { c.Tolerance = 0 }},
		{"zero entropy threshold", func(c *Config) { c.EntropyThreshold = 0 }},
		{"preamble inside charset range", func(c *Config) { c.PreambleFreq = 600 }},
		{"postamble inside charset range", func(c *Config) { c.PostambleFreq = 2180 }},
		{"indistinguishable boundary markers", func(c *Config) { c.PostambleFreq = c.PreambleFreq + 10 }},
		{"frequency above Nyquist", func(c *Config) { c.SampleRate = 4000 }},
		{"fade longer than tone", func(c *Config) { c.FadeSamples = 5000 }},
		{"buffer smaller than one frame step", func(c *Config) { c.BufferSize = 100 }},
	}

	for _, tc := range cases {
		cfg := testConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
