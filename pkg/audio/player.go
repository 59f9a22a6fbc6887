package audio

import (
	"bytes"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// Player plays a PCM clip once and can be stopped early
type Player struct {
	stopChan chan struct{}
	player   *oto.Player
	stopped  bool
	mu       sync.Mutex
}

// InitAudioContext initializes the global audio context once
func InitAudioContext() {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("[AUDIO] Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("[AUDIO] Audio context initialized")
	})
}

// PlayChime plays the confirmation chime in the background
func PlayChime() *Player {
	return PlayPCM(Chime())
}

// PlayPCM plays signed 16-bit little-endian stereo samples at SampleRate
func PlayPCM(pcm []byte) *Player {
	InitAudioContext()

	if !audioCtxReady || globalAudioCtx == nil {
		log.Printf("[AUDIO] Audio context not ready")
		return nil
	}

	p := &Player{
		stopChan: make(chan struct{}),
		player:   globalAudioCtx.NewPlayer(bytes.NewReader(pcm)),
	}

	go p.play()

	return p
}

func (p *Player) play() {
	p.player.Play()

	for p.player.IsPlaying() {
		select {
		case <-p.stopChan:
			p.player.Pause()
			p.closePlayer()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}

	p.closePlayer()
}

func (p *Player) closePlayer() {
	if err := p.player.Close(); err != nil {
		log.Printf("[AUDIO] Failed to close audio player: %v", err)
	}
}

// Stop stops the audio playback
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stopped {
		p.stopped = true
		close(p.stopChan)
	}
}
