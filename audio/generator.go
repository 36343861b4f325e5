package audio

import (
	"math"
	"math/rand"
	"time"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// Sound shapes
const (
	rejectDuration = 80 * time.Millisecond
	rejectAttack   = 5 * time.Millisecond
	rejectRelease  = 20 * time.Millisecond

	chimeNote1Duration = 90 * time.Millisecond
	chimeNote2Duration = 320 * time.Millisecond
	chimeAttack        = 5 * time.Millisecond
	chimeNote1Release  = 40 * time.Millisecond
	chimeNote2Release  = 260 * time.Millisecond

	clearDuration = 200 * time.Millisecond
	clearAttack   = 80 * time.Millisecond
	clearRelease  = 120 * time.Millisecond
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// synth renders waveforms at a fixed sample rate
type synth struct {
	rate int
}

// oscillator generates raw waveform samples
func (s synth) oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(s.rate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// envelope applies attack/release in place
func (s synth) envelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := s.samples(attack)
	releaseSamples := s.samples(release)

	releaseStart := max(total-releaseSamples, attackSamples)

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// samples converts duration to sample count
func (s synth) samples(d time.Duration) int {
	return int(d.Seconds() * float64(s.rate))
}

// concat appends b to a
func concat(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// --- Sound generators (unity gain) ---

func (s synth) reject() floatBuffer {
	buf := s.oscillator(waveSaw, 100.0, s.samples(rejectDuration))
	s.envelope(buf, rejectAttack, rejectRelease)
	return buf
}

// chime is a rising fourth: E6 then A6
func (s synth) chime() floatBuffer {
	n1 := s.oscillator(waveSine, 1318.51, s.samples(chimeNote1Duration))
	s.envelope(n1, chimeAttack, chimeNote1Release)

	n2 := s.oscillator(waveSine, 1760.0, s.samples(chimeNote2Duration))
	s.envelope(n2, chimeAttack, chimeNote2Release)

	return concat(n1, n2)
}

func (s synth) whoosh() floatBuffer {
	buf := s.oscillator(waveNoise, 0, s.samples(clearDuration))
	s.envelope(buf, clearAttack, clearRelease)
	return buf
}

// generate dispatches to a specific generator
func (s synth) generate(st SoundType) floatBuffer {
	switch st {
	case SoundReject:
		return s.reject()
	case SoundComplete:
		return s.chime()
	case SoundClear:
		return s.whoosh()
	default:
		return nil
	}
}
