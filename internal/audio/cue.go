package audio

import "math"

// Cue identifies a procedural sound effect.
type Cue int

const (
	CueCorrect Cue = iota
	CueIncorrect
)

// note is one segment of a cue.
type note struct {
	startHz, endHz float64
	dur            float64 // seconds
	square         bool
}

var cueNotes = map[Cue][]note{
	// Rising two-note chime: C5 then E5.
	CueCorrect: {
		{startHz: 523.25, endHz: 523.25, dur: 0.10},
		{startHz: 659.25, endHz: 659.25, dur: 0.18},
	},
	// Low buzz falling from 220 Hz to 110 Hz.
	CueIncorrect: {
		{startHz: 220, endHz: 110, dur: 0.30, square: true},
	},
}

// Synthesize renders c as a mono buffer at rate. Each note has a short
// attack and an exponential decay so it does not click.
func Synthesize(c Cue, rate int) *Buffer {
	var samples []float32
	for _, n := range cueNotes[c] {
		samples = append(samples, renderNote(n, rate)...)
	}
	return &Buffer{SampleRate: rate, Channels: 1, Samples: samples}
}

func renderNote(n note, rate int) []float32 {
	const (
		attack = 0.005
		gain   = 0.3
	)
	count := int(math.Round(n.dur * float64(rate)))
	out := make([]float32, count)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(rate)
		freq := n.startHz + (n.endHz-n.startHz)*t/n.dur
		phase += 2 * math.Pi * freq / float64(rate)

		v := math.Sin(phase)
		if n.square {
			v = math.Copysign(0.6, v)
		}

		env := math.Exp(-4 * t / n.dur)
		if t < attack {
			env *= t / attack
		}
		out[i] = float32(v * env * gain)
	}
	return out
}
