package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// wave maps a phase in [0,1) to a sample in [-1,1]
type wave func(phase float64) float64

func sine(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }

func triangle(phase float64) float64 { return 1 - 4*math.Abs(phase-0.5) }

// note is one pitched segment of a cue
type note struct {
	freq    float64
	wave    wave
	samples int
}

// tone plays notes back to back, phase carries across boundaries so the joins do not click
func tone(notes []note, rate beep.SampleRate) beep.Streamer {
	var idx, pos int
	var phase float64

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n := 0
		for n < len(samples) && idx < len(notes) {
			nt := notes[idx]
			if pos >= nt.samples {
				idx++
				pos = 0
				continue
			}

			v := nt.wave(phase)
			samples[n][0] = v
			samples[n][1] = v

			phase += nt.freq / float64(rate)
			phase -= math.Floor(phase)
			pos++
			n++
		}
		return n, n > 0
	})
}

// envelopeGain is the linear attack/release level at sample pos of total
func envelopeGain(pos, total, attack, release int) float64 {
	g := 1.0
	if attack > 0 && pos < attack {
		g = float64(pos) / float64(attack)
	}
	if release > 0 && pos >= total-release {
		g = math.Min(g, float64(total-pos)/float64(release))
	}
	return math.Max(0, g)
}

// shape applies one envelope across the whole of s
func shape(s beep.Streamer, total, attack, release int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			g := envelopeGain(pos, total, attack, release)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}
