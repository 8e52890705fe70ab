package sound

import (
	"encoding/binary"
	"math"
	"testing"
	"time"
)

func TestToneLength(t *testing.T) {
	pcm := Tone(440, 10*time.Millisecond, 0.5)
	want := 441 * channelCount * bitDepth
	if len(pcm) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(pcm))
	}
	if Tone(440, 0, 1) != nil {
		t.Fatal("expected no samples for zero duration")
	}
}

func TestToneIsStereoAndDecays(t *testing.T) {
	pcm := Tone(1000, 40*time.Millisecond, 0.25)
	frames := len(pcm) / (channelCount * bitDepth)

	sample := func(i, c int) int16 {
		off := (i*channelCount + c) * bitDepth
		return int16(binary.LittleEndian.Uint16(pcm[off:]))
	}

	peak := func(from, to int) float64 {
		var p float64
		for i := from; i < to; i++ {
			if l, r := sample(i, 0), sample(i, 1); l != r {
				t.Fatalf("frame %d: channels differ (%d, %d)", i, l, r)
			}
			p = math.Max(p, math.Abs(float64(sample(i, 0))))
		}
		return p
	}

	head := peak(0, frames/4)
	tail := peak(frames*3/4, frames)
	if head > 0.25*math.MaxInt16+1 {
		t.Fatalf("gain exceeded: %v", head)
	}
	if tail >= head {
		t.Fatalf("expected decay, head %v tail %v", head, tail)
	}
}

func TestNopPlay(t *testing.T) {
	var c Chime = Nop{}
	c.Play()
}
