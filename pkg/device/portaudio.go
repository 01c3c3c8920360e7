package device

import "github.com/gordonklaus/portaudio"

// PortAudio drives the host's default capture and playback devices through
// a single full-duplex stream.
type PortAudio struct {
	SampleRate float64
	stream     *portaudio.Stream
}

func (p *PortAudio) Start(callback func(in, out []int32)) {
	chk(portaudio.Initialize())
	stream, err := portaudio.OpenDefaultStream(1, 1, p.SampleRate, BufferSize, func(in, out []int32) {
		callback(in, out)
	})
	chk(err)
	p.stream = stream
	chk(stream.Start())
}

func (p *PortAudio) Stop() {
	if p.stream != nil {
		p.stream.Stop()
		p.stream.Close()
		p.stream = nil
	}
	portaudio.Terminate()
}

func chk(err error) {
	if err != nil {
		panic(err)
	}
}
