package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays input feedback through the system speaker.
// Every method is safe to call before Initialize or after a failed Initialize;
// playback is then silently skipped so inputs work without an audio device.
type Player struct {
	mu          sync.Mutex
	config      *AudioConfig
	cache       *soundCache
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewPlayer creates a player, nil cfg uses DefaultAudioConfig
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	p := &Player{
		config: cfg,
		cache:  newSoundCache(cfg.SampleRate),
		mixer:  &beep.Mixer{},
	}
	p.muted.Store(!cfg.Enabled)
	p.cache.preload()
	return p
}

// Initialize opens the speaker with a 100ms buffer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	sr := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all sounds
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues st and reports whether it will be heard
func (p *Player) Play(st SoundType) bool {
	if p.muted.Load() {
		return false
	}
	buf := p.cache.get(st)
	if buf == nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}

	speaker.Lock()
	p.mixer.Add(newBufferStreamer(buf, p.config.gain(st)))
	speaker.Unlock()
	return true
}

// PlayReject plays a short low buzz
func (p *Player) PlayReject() bool {
	return p.Play(SoundReject)
}

// PlayComplete plays a two-note chime
func (p *Player) PlayComplete() bool {
	return p.Play(SoundComplete)
}

// PlayClear plays a soft noise sweep
func (p *Player) PlayClear() bool {
	return p.Play(SoundClear)
}

// ToggleMute flips the mute state and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports whether playback is muted
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsRunning reports whether the speaker is open
func (p *Player) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// bufferStreamer streams a mono buffer to both channels at a fixed gain
type bufferStreamer struct {
	buf  floatBuffer
	pos  int
	gain float64
}

func newBufferStreamer(buf floatBuffer, gain float64) *bufferStreamer {
	return &bufferStreamer{buf: buf, gain: gain}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos] * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}
