package alert

import (
	"encoding/binary"
	"math"
	"time"
)

// chimeVolume is the peak amplitude as a fraction of full scale.
const chimeVolume = 0.45

type note struct {
	freq float64
	dur  time.Duration
}

// ring is a descending two-tone ring, played twice.
var ring = []note{
	{988, 280 * time.Millisecond},
	{784, 420 * time.Millisecond},
	{988, 280 * time.Millisecond},
	{784, 700 * time.Millisecond},
}

// Chime returns the built-in completion sound as a WAV file.
func Chime() []byte {
	var pcm []byte
	for _, n := range ring {
		pcm = appendTone(pcm, n)
	}
	return EncodeWAV(pcm)
}

// appendTone renders a sine note with an exponential decay so consecutive
// notes don't click into each other.
func appendTone(pcm []byte, n note) []byte {
	samples := int(n.dur.Seconds() * SampleRate)
	for i := 0; i < samples; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-5 * t / n.dur.Seconds())
		v := chimeVolume * env * math.Sin(2*math.Pi*n.freq*t)
		pcm = binary.LittleEndian.AppendUint16(pcm, uint16(int16(v*math.MaxInt16)))
	}
	return pcm
}
