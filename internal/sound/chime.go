package sound

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 2 // 16-bit = 2 bytes
)

// Chime plays a short cue when the focused system changes.
type Chime interface {
	Play()
}

// Nop is a silent Chime.
type Nop struct{}

func (Nop) Play() {}

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// Oto plays a synthesized blip through the system audio device.
type Oto struct {
	ctx  *oto.Context
	pcm  []byte
	mu   sync.Mutex
	live []*oto.Player
}

// NewOto opens the audio device. Callers fall back to Nop on error.
func NewOto() (*Oto, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, err
	}
	return &Oto{ctx: ctx, pcm: Tone(880, 40*time.Millisecond, 0.25)}, nil
}

// Play starts the blip and returns immediately. Finished players are
// released on the next call.
func (o *Oto) Play() {
	o.mu.Lock()
	defer o.mu.Unlock()

	kept := o.live[:0]
	for _, p := range o.live {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	o.live = kept

	p := o.ctx.NewPlayer(bytes.NewReader(o.pcm))
	p.Play()
	o.live = append(o.live, p)
}

// Close stops and releases every player.
func (o *Oto) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, p := range o.live {
		p.Pause()
		_ = p.Close()
	}
	o.live = nil
}

// Tone renders a sine at freq Hz with an exponential decay as interleaved
// stereo signed 16-bit little-endian PCM.
func Tone(freq float64, d time.Duration, gain float64) []byte {
	n := int(d.Seconds() * sampleRate)
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*channelCount*bitDepth)
	decay := 5.0 / float64(n)
	for i := range n {
		env := math.Exp(-decay * float64(i))
		v := gain * env * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
		s := int16(math.Round(v * math.MaxInt16))
		for c := range channelCount {
			off := (i*channelCount + c) * bitDepth
			binary.LittleEndian.PutUint16(out[off:], uint16(s))
		}
	}
	return out
}
