// Package alert plays a short audible chime through the system audio
// device and wraps a notifier so urgent messages ring it.
package alert

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	SampleRate   = 24000
	ChannelCount = 1
)

// Tone is one segment of a chime.
type Tone struct {
	Freq     float64 // Hz; 0 is silence
	Duration time.Duration
}

// DefaultChime is a two-note descending alert.
var DefaultChime = []Tone{
	{Freq: 880, Duration: 120 * time.Millisecond},
	{Freq: 0, Duration: 40 * time.Millisecond},
	{Freq: 660, Duration: 180 * time.Millisecond},
}

// fadeSamples is the linear attack/release length, which keeps the
// segment edges from clicking.
const fadeSamples = SampleRate / 200

// Synthesize renders tones as signed 16-bit little-endian mono PCM at
// SampleRate.
func Synthesize(tones []Tone, volume float64) []byte {
	volume = math.Max(0, math.Min(1, volume))
	amp := volume * math.MaxInt16

	var total int
	for _, t := range tones {
		total += samplesFor(t.Duration)
	}
	pcm := make([]byte, 0, total*2)

	for _, t := range tones {
		n := samplesFor(t.Duration)
		for i := 0; i < n; i++ {
			var v float64
			if t.Freq > 0 {
				v = amp * envelope(i, n) * math.Sin(2*math.Pi*t.Freq*float64(i)/SampleRate)
			}
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(int16(v)))
		}
	}
	return pcm
}

func samplesFor(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(int64(d) * SampleRate / int64(time.Second))
}

func envelope(i, n int) float64 {
	fade := fadeSamples
	if n < 2*fade {
		fade = n / 2
	}
	if fade == 0 {
		return 1
	}
	switch {
	case i < fade:
		return float64(i) / float64(fade)
	case i >= n-fade:
		return float64(n-1-i) / float64(fade)
	}
	return 1
}
