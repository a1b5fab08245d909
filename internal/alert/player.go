package alert

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Player plays the chime via oto.
type Player struct {
	ctx    *oto.Context
	log    *logger.Logger
	pcm    []byte
	mu     sync.Mutex
	active *oto.Player // currently playing, nil when idle
}

// NewPlayer initializes the system audio context and pre-renders the
// chime. Returns an error if the audio device is unavailable.
func NewPlayer(log *logger.Logger, volume float64) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("alert player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{ctx: ctx, log: log, pcm: Synthesize(DefaultChime, volume)}, nil
}

// Chime starts the chime in the background and returns immediately.
// A chime requested while one is already playing is dropped.
func (p *Player) Chime() {
	p.mu.Lock()
	if p.active != nil {
		p.mu.Unlock()
		p.log.Debug("alert player: busy, chime dropped")
		return
	}
	player := p.ctx.NewPlayer(bytes.NewReader(p.pcm))
	p.active = player
	p.mu.Unlock()

	player.Play()
	go p.wait(player)
}

func (p *Player) wait(player *oto.Player) {
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	p.mu.Lock()
	p.active = nil
	p.mu.Unlock()

	if err := player.Close(); err != nil {
		p.log.Warn("alert player: close: %v", err)
	}
}

// Stop interrupts the current chime, if any. Safe to call concurrently
// and when nothing is playing.
func (p *Player) Stop() {
	p.mu.Lock()
	active := p.active
	p.mu.Unlock()

	if active != nil {
		active.Pause()
		p.log.Debug("alert player: interrupted")
	}
}
