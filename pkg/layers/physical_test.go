package layer

import (
	"Toneline/pkg/async"
	"Toneline/pkg/device"
	"Toneline/pkg/modem"
	"testing"
	"time"
)

func TestPhysicalLayer(t *testing.T) {

	const (
		SAMPLE_RATE   = 8000
		TONE_DURATION = 0.05
		LOOPBACK_RATE = 1000

		MESSAGE = "HELLO WORLD"
	)

	cfg := modem.DefaultConfig()
	cfg.SampleRate = SAMPLE_RATE
	cfg.ToneDuration = TONE_DURATION

	modulator, err := modem.NewModulator(cfg)
	if err != nil {
		t.Fatal(err)
	}
	demodulator, err := modem.NewDemodulator(cfg)
	if err != nil {
		t.Fatal(err)
	}

	physicalLayer := PhysicalLayer{
		Device: &device.Loopback{SampleRate: LOOPBACK_RATE},
		Encoder: Encoder{
			Modulator: modulator,
		},
		Decoder: Decoder{
			Demodulator: demodulator,
		},
	}

	physicalLayer.Open()
	defer physicalLayer.Close()

	if err := physicalLayer.Send(MESSAGE); err != nil {
		t.Fatal(err)
	}

	result := async.Promise(func() modem.MessageComplete {
		for e := range physicalLayer.Events() {
			if msg, ok := e.(modem.MessageComplete); ok {
				return msg
			}
		}
		return modem.MessageComplete{}
	})

	select {
	case msg := <-result:
		if msg.Text != MESSAGE {
			t.Errorf("Expected %q, but got %q", MESSAGE, msg.Text)
		}
		if !msg.ChecksumValid {
			t.Errorf("Expected a valid checksum")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no message decoded before timeout")
	}
}
