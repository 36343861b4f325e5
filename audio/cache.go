package audio

import "sync"

// soundCache synthesizes each sound on first use and keeps the buffer
type soundCache struct {
	load [soundTypeCount]func() floatBuffer
}

func newSoundCache(rate int) *soundCache {
	s := synth{rate: rate}
	c := &soundCache{}
	for st := range soundTypeCount {
		c.load[st] = sync.OnceValue(func() floatBuffer { return s.generate(st) })
	}
	return c
}

// get returns the buffer for st, nil when st is unknown
func (c *soundCache) get(st SoundType) floatBuffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}
	return c.load[st]()
}

// preload synthesizes every sound so the first keystroke does not pay for it
func (c *soundCache) preload() {
	for st := range soundTypeCount {
		c.get(st)
	}
}
