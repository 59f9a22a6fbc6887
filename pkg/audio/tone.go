package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// Output format of every clip
const (
	SampleRate    = 44100
	ChannelCount  = 2
	bytesPerFrame = ChannelCount * 2
)

// Tone synthesizes a sine tone with a short linear fade in and out
func Tone(freq float64, duration time.Duration, volume float64) []byte {
	frames := int(duration.Seconds() * SampleRate)
	if frames <= 0 {
		return nil
	}

	fade := SampleRate / 100 // 10ms
	if fade > frames/2 {
		fade = frames / 2
	}

	buf := make([]byte, frames*bytesPerFrame)
	for i := 0; i < frames; i++ {
		gain := volume
		switch {
		case i < fade:
			gain *= float64(i) / float64(fade)
		case i >= frames-fade:
			gain *= float64(frames-1-i) / float64(fade)
		}

		sample := int16(gain * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/SampleRate))
		for ch := 0; ch < ChannelCount; ch++ {
			binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+ch*2:], uint16(sample))
		}
	}
	return buf
}

// Chime is the two-note sound played after a reservation is saved
func Chime() []byte {
	first := Tone(880, 120*time.Millisecond, 0.3)
	second := Tone(1318.5, 180*time.Millisecond, 0.3)
	return append(first, second...)
}
