package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToneLength(t *testing.T) {
	pcm := Tone(440, 100*time.Millisecond, 0.5)

	assert.Len(t, pcm, SampleRate/10*bytesPerFrame)
	assert.Nil(t, Tone(440, 0, 0.5))
}

func TestToneFadesFromSilence(t *testing.T) {
	pcm := Tone(440, 50*time.Millisecond, 1)

	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-bytesPerFrame:]))
	assert.Equal(t, int16(0), first)
	assert.Equal(t, int16(0), last)
}

func TestToneChannelsMatch(t *testing.T) {
	pcm := Tone(440, 20*time.Millisecond, 0.8)

	for i := 0; i < len(pcm); i += bytesPerFrame {
		assert.Equal(t, pcm[i:i+2], pcm[i+2:i+4])
	}
}

func TestChimeIsBothNotes(t *testing.T) {
	want := len(Tone(880, 120*time.Millisecond, 0.3)) + len(Tone(1318.5, 180*time.Millisecond, 0.3))
	assert.Len(t, Chime(), want)
}
