package layer

import (
	"time"

	"Toneline/pkg/async"
	"Toneline/pkg/device"
	"Toneline/pkg/modem"
)

// PhysicalLayer couples a modulator and a demodulator to an audio device.
// The device callback only moves samples; decoding happens on a separate
// goroutine fed through the demodulator's ring buffer.
type PhysicalLayer struct {
	Device device.Device

	Encoder Encoder
	Decoder Decoder
}

type Encoder struct {
	Modulator *modem.Modulator

	outputBuffer chan []int32 // rendered frames waiting to be played
	current      []int32      // frame currently being written out
}

type Decoder struct {
	Demodulator *modem.Demodulator

	events chan modem.Event
	done   async.Signal[struct{}]
}

func (p *PhysicalLayer) Open() {
	if p.Encoder.outputBuffer == nil {
		p.Encoder.outputBuffer = make(chan []int32, 8)
	}
	if p.Decoder.events == nil {
		p.Decoder.events = make(chan modem.Event, 64)
	}

	go p.Decoder.run(p.Decoder.done.Signal())

	p.Device.Start(func(in, out []int32) {
		p.Decoder.read(in)
		p.Encoder.write(out)
	})
}

func (p *PhysicalLayer) Close() {
	p.Device.Stop()
	p.Decoder.done.Notify()
	p.Decoder.Demodulator.Reset()
}

// Send renders the text and queues it for playback.
func (p *PhysicalLayer) Send(text string) error {
	return p.Encoder.send(text)
}

// Events exposes the demodulator's event stream.
func (p *PhysicalLayer) Events() <-chan modem.Event {
	return p.Decoder.events
}

func (d *Decoder) read(in []int32) {
	d.Demodulator.Feed(modem.Int32ToFloat64(in))
}

// run drains the ring buffer periodically and forwards decode events.
// Slow consumers lose events rather than stalling the decoder.
func (d *Decoder) run(done <-chan struct{}) {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			for _, e := range d.Demodulator.Push(nil) {
				select {
				case d.events <- e:
				default:
				}
			}
		}
	}
}

// write consumes the outputBuffer and fills out, zero-padding the rest.
func (e *Encoder) write(out []int32) {

	if e.current == nil {
		select {
		case e.current = <-e.outputBuffer:
		default:
			// do nothing
		}
	}

	i := 0
	if e.current != nil {
		i = copy(out, e.current)
		e.current = e.current[i:]

		if len(e.current) == 0 {
			e.current = nil
		}
	}

	for i < len(out) {
		out[i] = 0
		i += 1
	}
}

func (e *Encoder) send(text string) error {
	samples, err := e.Modulator.Modulate(text)
	if err != nil {
		return err
	}
	e.outputBuffer <- modem.Float64ToInt32(samples)
	return nil
}
