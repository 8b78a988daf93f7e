//go:build !headless

// scsp_backend_oto.go - oto/v3-backed AudioBackend (§4.3's "ring-buffered
// sample output"), grounded on the teacher's audio_backend_oto.go
// OtoPlayer: same oto.NewContext/NewPlayer/atomic-pointer-free ring-read
// shape, adapted from a mono float32 chip-driven reader to a stereo
// interleaved int16 ring fed by SCSP.Update.
package main

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

const otoRingFrames = 1 << 14 // power of two, stereo int16 frames

// OtoBackend implements AudioBackend by feeding rendered stereo samples
// into a small ring buffer that oto's pull-based Read drains on its own
// goroutine.
type OtoBackend struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	ring    []int16 // interleaved L/R
	head    int
	tail    int
	started bool
}

// NewOtoBackend opens an oto context at the Saturn's native SCSP output
// rate (§3.2) and wires a stereo int16 player to it.
func NewOtoBackend(sampleRate int) (*OtoBackend, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready

	b := &OtoBackend{
		ctx:  ctx,
		ring: make([]int16, otoRingFrames*2),
	}
	b.player = ctx.NewPlayer(b)
	return b, nil
}

// Write implements AudioBackend: it appends interleaved samples to the
// ring, dropping the oldest frames on overflow rather than blocking the
// pacer (§2's cooperative single-threaded model cannot afford to stall on
// audio backpressure).
func (b *OtoBackend) Write(left, right []int16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := len(left)
	cap := len(b.ring) / 2
	for i := 0; i < n; i++ {
		idx := (b.tail % cap) * 2
		b.ring[idx] = left[i]
		b.ring[idx+1] = right[i]
		b.tail++
		if b.tail-b.head > cap {
			b.head = b.tail - cap
		}
	}
}

// Read implements io.Reader for oto.Player: it drains available stereo
// frames as little-endian int16 pairs, zero-filling when the ring is
// empty rather than underrunning audibly.
func (b *OtoBackend) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cap := len(b.ring) / 2
	frames := len(p) / 4
	for i := 0; i < frames; i++ {
		off := i * 4
		if b.head >= b.tail {
			p[off], p[off+1], p[off+2], p[off+3] = 0, 0, 0, 0
			continue
		}
		idx := (b.head % cap) * 2
		l, r := b.ring[idx], b.ring[idx+1]
		b.head++
		p[off] = byte(l)
		p[off+1] = byte(l >> 8)
		p[off+2] = byte(r)
		p[off+3] = byte(r >> 8)
	}
	return frames * 4, nil
}

func (b *OtoBackend) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.started {
		b.player.Play()
		b.started = true
	}
}

func (b *OtoBackend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		b.player.Close()
		b.started = false
	}
}
