package audio

import "log"

// OpenDevice returns a device sink, or a real-time SilentSink when muted or
// when no device can be opened.
func OpenDevice(mute bool) Sink {
	if mute {
		return NewSilentSink(SampleRate)
	}
	s, err := NewOtoSink(SampleRate)
	if err != nil {
		log.Printf("audio: %v; continuing without sound", err)
		return NewSilentSink(SampleRate)
	}
	return s
}
