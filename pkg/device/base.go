package device

// Device is an abstract mono audio endpoint. Start registers a callback that
// is invoked with each captured buffer (in) and must fill the playback
// buffer (out); both carry signed 32 bit PCM.
type Device interface {
	Start(callback func(in, out []int32))
	Stop()
}

const BufferSize = 512
