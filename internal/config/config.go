// Package config loads the shared sender/listener configuration. Missing
// fields keep their defaults, so a partial config.yml only has to name
// what it changes.
package config

import (
	"fmt"
	"os"

	"Toneline/pkg/device"
	layer "Toneline/pkg/layers"
	"Toneline/pkg/modem"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Device struct {
		Backend    string `yaml:"backend"` // loopback, portaudio or asio
		DeviceName string `yaml:"device_name"`
		InChannel  int    `yaml:"in_channel"`
		OutChannel int    `yaml:"out_channel"`
	} `yaml:"device"`

	Protocol struct {
		Charset                    string  `yaml:"charset"`
		BaseFreq                   float64 `yaml:"base_freq"`
		StepFreq                   float64 `yaml:"step_freq"`
		PreambleFreq               float64 `yaml:"preamble_freq"`
		PostambleFreq              float64 `yaml:"postamble_freq"`
		BoundaryDurationMultiplier float64 `yaml:"boundary_duration_multiplier"`
		SampleRate                 float64 `yaml:"sample_rate"`
		ToneDuration               float64 `yaml:"tone_duration"`
		Amplitude                  float64 `yaml:"amplitude"`
		FadeSamples                int     `yaml:"fade_samples"`
		Tolerance                  float64 `yaml:"tolerance"`
		EntropyThreshold           float64 `yaml:"entropy_threshold"`
		BufferSize                 int     `yaml:"buffer_size"`
	} `yaml:"protocol"`
}

func Default() *Config {
	var config Config
	config.Device.Backend = "portaudio"

	m := modem.DefaultConfig()
	p := &config.Protocol
	p.Charset = string(m.Charset)
	p.BaseFreq = m.BaseFreq
	p.StepFreq = m.StepFreq
	p.PreambleFreq = m.PreambleFreq
	p.PostambleFreq = m.PostambleFreq
	p.BoundaryDurationMultiplier = m.BoundaryDurationMultiplier
	p.SampleRate = m.SampleRate
	p.ToneDuration = m.ToneDuration
	p.Amplitude = m.Amplitude
	p.FadeSamples = m.FadeSamples
	p.Tolerance = m.Tolerance
	p.EntropyThreshold = m.EntropyThreshold
	p.BufferSize = m.BufferSize
	return &config
}

// Load reads filename over the defaults. A missing file is not an error;
// it just yields the default configuration.
func Load(filename string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Modem() modem.Config {
	p := c.Protocol
	return modem.Config{
		Charset:                    modem.Charset(p.Charset),
		BaseFreq:                   p.BaseFreq,
		StepFreq:                   p.StepFreq,
		PreambleFreq:               p.PreambleFreq,
		PostambleFreq:              p.PostambleFreq,
		BoundaryDurationMultiplier: p.BoundaryDurationMultiplier,
		SampleRate:                 p.SampleRate,
		ToneDuration:               p.ToneDuration,
		Amplitude:                  p.Amplitude,
		FadeSamples:                p.FadeSamples,
		Tolerance:                  p.Tolerance,
		EntropyThreshold:           p.EntropyThreshold,
		BufferSize:                 p.BufferSize,
	}
}

func (c *Config) CreateDevice() (device.Device, error) {
	switch c.Device.Backend {
	case "loopback":
		return &device.Loopback{SampleRate: c.Protocol.SampleRate}, nil
	case "portaudio":
		return &device.PortAudio{SampleRate: c.Protocol.SampleRate}, nil
	case "asio":
		return &device.ASIOMono{
			DeviceName: c.Device.DeviceName,
			SampleRate: c.Protocol.SampleRate,
			InChannel:  c.Device.InChannel,
			OutChannel: c.Device.OutChannel,
		}, nil
	}
	return nil, fmt.Errorf("config: unknown device backend %q", c.Device.Backend)
}

func (c *Config) CreateLayer() (*layer.PhysicalLayer, error) {
	dev, err := c.CreateDevice()
	if err != nil {
		return nil, err
	}
	modulator, err := modem.NewModulator(c.Modem())
	if err != nil {
		return nil, err
	}
	demodulator, err := modem.NewDemodulator(c.Modem())
	if err != nil {
		return nil, err
	}
	return &layer.PhysicalLayer{
		Device:  dev,
		Encoder: layer.Encoder{Modulator: modulator},
		Decoder: layer.Decoder{Demodulator: demodulator},
	}, nil
}
