package modem

import (
	"math"
	"strings"
	"sync"
)

type DecoderState int

const (
	Idle      DecoderState = iota // waiting for a preamble
	Syncing                       // preamble found, absorbing its extra duration
	Receiving                     // accumulating character tones
	Done                          // postamble found, message emitted
	Error                         // reserved, never entered by the streaming path
)

func (s DecoderState) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Syncing:
		return "SYNCING"
	case Receiving:
		return "RECEIVING"
	case Done:
		return "DONE"
	case Error:
		return "ERROR"
	}
	return "UNKNOWN"
}

type Confidence int

const (
	Certain Confidence = iota
	Uncertain
)

func (c Confidence) String() string {
	if c == Certain {
		return "certain"
	}
	return "uncertain"
}

// DecodedSymbol is one received character slot. Char is 0 when no charset
// frequency was within tolerance; such slots stay out of the rendered text
// and of the checksum recomputation.
type DecodedSymbol struct {
	Char       rune
	Freq       float64 // detected peak frequency
	Deviation  float64 // distance from the matched charset frequency
	Confidence Confidence
}

// Event is emitted by the demodulator as the stream advances. The concrete
// types are StateChanged, PartialSymbol and MessageComplete.
type Event interface{ event() }

type StateChanged struct {
	From, To DecoderState
}

type PartialSymbol struct {
	Symbol DecodedSymbol
}

// MessageComplete carries the payload symbols (checksum tone excluded) of
// one finished transmission. A checksum mismatch does not suppress the
// message; it only clears ChecksumValid.
type MessageComplete struct {
	Text          string
	Symbols       []DecodedSymbol
	ChecksumValid bool
}

func (StateChanged) event()    {}
func (PartialSymbol) event()   {}
func (MessageComplete) event() {}

// Demodulator reconstructs messages from a continuous sample stream. The
// producer side appends raw audio with Feed; the consumer side advances the
// state machine with Step (or Push, which does both). Analysis windows are
// one tone long; while hunting for the preamble the window slides by half a
// tone, and two consecutive matches are required so the peak must hold for
// at least a full tone inside the announced preamble window.
type Demodulator struct {
	Config Config

	ring *RingBuffer
	fm   FrequencyMap

	mu          sync.Mutex
	state       DecoderState
	matchStreak int
	symbols     []DecodedSymbol
}

func NewDemodulator(cfg Config) (*Demodulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Demodulator{
		Config: cfg,
		ring:   NewRingBuffer(cfg.ringCapacity()),
		fm:     cfg.FrequencyMap(),
		state:  Idle,
	}, nil
}

// Feed appends captured samples to the ring buffer. Safe to call from an
// audio callback; never blocks and never fails (overflow drops the oldest
// samples, which in Idle is just stale silence).
func (d *Demodulator) Feed(samples []float64) {
	d.ring.Write(samples)
}

// Step consumes at most one analysis window and returns the events it
// produced, or nil when not enough samples are buffered. Cooperative: a
// host loop can interleave it with other work.
func (d *Demodulator) Step() []Event {
	events, _ := d.step()
	return events
}

// Push feeds samples and then steps until the buffered audio is exhausted.
func (d *Demodulator) Push(samples []float64) []Event {
	d.Feed(samples)
	var events []Event
	for {
		stepped, ok := d.step()
		events = append(events, stepped...)
		if !ok {
			return events
		}
	}
}

// Reset cancels listening immediately: the buffer and any partially
// received message are discarded without a final event.
func (d *Demodulator) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ring.Reset()
	d.state = Idle
	d.matchStreak = 0
	d.symbols = nil
}

func (d *Demodulator) State() DecoderState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Buffer exposes the receive ring buffer for monitoring.
func (d *Demodulator) Buffer() *RingBuffer {
	return d.ring
}

func (d *Demodulator) step() ([]Event, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	chunk := d.Config.ChunkSamples()
	win, ok := d.ring.Peek(chunk)
	if !ok {
		return nil, false
	}
	a := Analyze(win, d.Config.SampleRate)

	var events []Event
	switch d.state {
	case Idle:
		// Slide by half a tone so a transmission that starts mid-window
		// is still caught inside the preamble.
		d.ring.Discard(chunk / 2)
		if d.matches(a.PeakFreq, d.Config.PreambleFreq) {
			d.matchStreak++
			if d.matchStreak >= 2 {
				debugLog("[Demodulation] preamble lock at %.1f Hz\n", a.PeakFreq)
				d.matchStreak = 0
				d.setState(Syncing, &events)
			}
		} else {
			d.matchStreak = 0
		}

	case Syncing:
		// Consume the rest of the preamble; the first window that no
		// longer matches straddles its end, so half a tone more lands
		// on the first character.
		d.ring.Discard(chunk / 2)
		if !d.matches(a.PeakFreq, d.Config.PreambleFreq) {
			d.symbols = d.symbols[:0]
			d.setState(Receiving, &events)
		}

	case Receiving:
		d.ring.Discard(chunk)
		if d.matches(a.PeakFreq, d.Config.PostambleFreq) {
			d.finish(&events)
			break
		}
		sym := d.classify(a)
		d.symbols = append(d.symbols, sym)
		events = append(events, PartialSymbol{Symbol: sym})
	}
	return events, true
}

func (d *Demodulator) matches(peak, freq float64) bool {
	return math.Abs(peak-freq) < d.Config.Tolerance
}

// classify maps one analyzed chunk to a symbol. A straddling or noisy chunk
// is never fatal: no frequency match or high entropy just flags the slot.
func (d *Demodulator) classify(a Analysis) DecodedSymbol {
	sym := DecodedSymbol{Freq: a.PeakFreq}
	ch, deviation, ok := d.fm.NearestChar(a.PeakFreq, d.Config.Tolerance)
	if !ok {
		sym.Confidence = Uncertain
		return sym
	}
	sym.Char = ch
	sym.Deviation = deviation
	if a.Entropy > d.Config.EntropyThreshold {
		sym.Confidence = Uncertain
	}
	return sym
}

// finish treats the last accumulated symbol as the checksum character,
// emits the message and returns to Idle for the next transmission.
func (d *Demodulator) finish(events *[]Event) {
	d.setState(Done, events)

	var msg MessageComplete
	if len(d.symbols) > 0 {
		last := len(d.symbols) - 1
		checksum := d.symbols[last]
		payload := append([]DecodedSymbol(nil), d.symbols[:last]...)

		var b strings.Builder
		for _, s := range payload {
			if s.Char != 0 {
				b.WriteRune(s.Char)
			}
		}
		msg.Text = b.String()
		msg.Symbols = payload
		msg.ChecksumValid = checksum.Char != 0 && d.Config.Charset.VerifyChecksum(msg.Text, checksum.Char)
	}
	*events = append(*events, msg)
	debugLog("[Demodulation] message complete: %q (checksum ok: %v)\n", msg.Text, msg.ChecksumValid)

	d.symbols = nil
	d.setState(Idle, events)
}

func (d *Demodulator) setState(to DecoderState, events *[]Event) {
	*events = append(*events, StateChanged{From: d.state, To: to})
	d.state = to
}
