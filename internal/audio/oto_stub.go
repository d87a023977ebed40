//go:build linux && !cgo

package audio

import "errors"

// OtoSink is unavailable: the Linux device backend needs cgo.
type OtoSink struct{ *SilentSink }

// NewOtoSink always fails on Linux builds without cgo.
func NewOtoSink(rate int) (*OtoSink, error) {
	return nil, errors.New("audio device support requires a cgo build on linux")
}
