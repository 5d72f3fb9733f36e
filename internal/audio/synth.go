// Package audio synthesises the display's sound effects as raw stereo
// float32 little-endian PCM, ready for an oto player.
package audio

import (
	"math"

	"fireworks/internal/sim"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // two float32 channels
)

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*frameBytes) }

// Launch is the rising whistle of a rocket leaving the ground.
func Launch(seed uint64) []byte {
	n := int(0.55 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	hp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.08, 0.3, 0.55, 0.45)
		freq := 700 + 1500*p*p
		phase += 2 * math.Pi * freq / SampleRate
		whistle := math.Sin(phase) * 0.22
		// Airy hiss under the tone.
		raw := lcg(&seed)
		hp = hp*0.6 + raw*0.4
		hiss := (raw - hp) * 0.12
		putStereoF32(buf, i, softSat((whistle+hiss)*env))
	}
	return buf
}

// Boom is a burst whose depth and length scale with size, the number of
// particles it released: larger bursts are deeper, longer and rumblier.
func Boom(size int, seed uint64) []byte {
	return boom(size, 1, seed)
}

// patternPitch scales the sub-boom frequency per burst shape. Sharp, thin
// shapes (heart, ring) pop higher; multi-shell bursts thud lower.
var patternPitch = map[sim.Pattern]float64{
	sim.PatternSphere:    1.0,
	sim.PatternHeart:     1.4,
	sim.PatternCrackling: 1.1,
	sim.PatternShell:     0.8,
	sim.PatternRing:      1.25,
	sim.PatternTrail:     0.9,
}

// Pitch returns the sub-boom frequency factor for p; unknown patterns get 1.
func Pitch(p sim.Pattern) float64 {
	if k, ok := patternPitch[p]; ok {
		return k
	}
	return 1
}

func boom(size int, pitch float64, seed uint64) []byte {
	norm := clampF(float64(size-80)/170.0, 0, 1)
	dur := 0.30 + 0.60*norm
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	lp1, lp2 := 0.0, 0.0 // two lowpasses for bandpassed body
	rumLP := 0.0
	subPhase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		subStart := (140.0 - 60.0*norm) * pitch
		subEnd := (32.0 - 16.0*norm) * pitch
		subFreq := subStart * math.Pow(subEnd/subStart, p*(1.6+1.5*norm))
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*(7.0-3.8*norm)) * (0.44 + 0.34*norm)

		crack := 0.0
		crackWin := 0.038 - 0.020*norm
		if p < crackWin {
			crack = lcg(&seed) * (1 - p/crackWin) * (0.88 - 0.28*norm)
		}

		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*(6.2-2.2*norm)) * (0.30 + 0.17*norm)

		rumLP = rumLP*0.95 + lcg(&seed)*0.05
		rumble := rumLP * math.Exp(-p*(3.0-1.5*norm)) * (0.06 + 0.20*norm)

		s := sub + crack + body + rumble
		putStereoF32(buf, i, softSat(s*0.86))
	}
	return buf
}

// Crackle is a train of short noise pops, for crackling bursts and glitter.
func Crackle(pops int, seed uint64) []byte {
	if pops <= 0 {
		return nil
	}
	n := int(0.9 * SampleRate)
	mix := make([]float64, n)
	popLen := SampleRate * 12 / 1000
	for range pops {
		lcg(&seed)
		start := int(seed>>40) % (n - popLen)
		gain := 0.25 + 0.35*math.Abs(lcg(&seed))
		for j := 0; j < popLen; j++ {
			mix[start+j] += lcg(&seed) * gain * math.Exp(-float64(j)/float64(popLen)*6)
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ForPattern returns the burst sound for a pattern: crackling bursts add a
// pop train on top of the boom.
func ForPattern(p sim.Pattern, size int, seed uint64) []byte {
	b := boom(size, Pitch(p), seed)
	if p != sim.PatternCrackling {
		return b
	}
	return Mix(b, Crackle(size/4, seed^0xC4AC))
}

// Mix sums two buffers sample by sample with soft saturation. The result is
// as long as the longer input.
func Mix(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]byte, len(a))
	copy(out, a)
	for i := 0; i+frameBytes <= len(b); i += frameBytes {
		s := float64(sampleAt(a, i)) + float64(sampleAt(b, i))
		putStereoF32(out, i/frameBytes, softSat(s))
	}
	return out
}

func sampleAt(buf []byte, off int) float32 {
	v := uint32(buf[off]) | uint32(buf[off+1])<<8 | uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
	return math.Float32frombits(v)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
