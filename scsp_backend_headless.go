//go:build headless

// scsp_backend_headless.go - no-op AudioBackend for headless test/CI runs,
// grounded on the teacher's audio_backend_headless.go build-tagged stub.
package main

// OtoBackend is a drop-in no-op replacement for the oto-backed
// implementation, selected by the "headless" build tag so CI and
// automated test runs never touch a real audio device.
type OtoBackend struct {
	started bool
}

func NewOtoBackend(sampleRate int) (*OtoBackend, error) {
	return &OtoBackend{}, nil
}

func (b *OtoBackend) Write(left, right []int16) {}

func (b *OtoBackend) Start() { b.started = true }
func (b *OtoBackend) Close() { b.started = false }
