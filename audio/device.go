package audio

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/hajimehoshi/oto"
	"github.com/robmorgan/clave/engine/scale"
)

// bytes per sample sent to the device (signed 16-bit)
const deviceBitDepth = 2

// Device plays through the system audio output using oto. oto allows a single
// context per process, so the context is created on the first Open and shared
// by every later session until Close.
type Device struct {
	bufferSize int

	mu         sync.Mutex
	context    *oto.Context
	sampleRate int
	channels   int
}

// NewDevice creates a Device whose driver buffer holds bufferSize bytes.
func NewDevice(bufferSize int) *Device {
	return &Device{bufferSize: bufferSize}
}

// Open creates a player on the shared context.
func (d *Device) Open(sampleRate, channels int) (Sink, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.context == nil {
		context, err := oto.NewContext(sampleRate, channels, deviceBitDepth, d.bufferSize)
		if err != nil {
			return nil, fmt.Errorf("cannot create oto context: %w", err)
		}
		d.context = context
		d.sampleRate = sampleRate
		d.channels = channels
	} else if d.sampleRate != sampleRate || d.channels != channels {
		return nil, fmt.Errorf("audio device already open at %d Hz/%d channels, cannot reopen at %d Hz/%d channels",
			d.sampleRate, d.channels, sampleRate, channels)
	}

	return &deviceSink{player: d.context.NewPlayer()}, nil
}

// Close disposes of the oto context.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.context == nil {
		return nil
	}
	err := d.context.Close()
	d.context = nil
	if err != nil {
		return fmt.Errorf("cannot close oto context: %w", err)
	}
	return nil
}

type deviceSink struct {
	player *oto.Player
	closed bool

	// reused between writes; it grows to the largest buffer once
	tmpBuffer []byte
}

func (s *deviceSink) Write(samples []float32) error {
	if s.closed {
		return fmt.Errorf("cannot write to closed player")
	}

	s.tmpBuffer = floatBufferTo16BitLE(samples, s.tmpBuffer[:0])
	if _, err := s.player.Write(s.tmpBuffer); err != nil {
		return fmt.Errorf("cannot write to player: %w", err)
	}
	return nil
}

// Stop is a no-op: the oto player has no pause and drains on Close.
func (s *deviceSink) Stop() error {
	return nil
}

func (s *deviceSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

// floatBufferTo16BitLE appends buff to out as signed 16-bit little-endian PCM.
func floatBufferTo16BitLE(buff []float32, out []byte) []byte {
	for _, v := range buff {
		out = binary.LittleEndian.AppendUint16(out, uint16(scale.ToInt16(v)))
	}
	return out
}
