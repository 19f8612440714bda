package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneFreq     = 660
	toneDuration = 40 * time.Millisecond
)

// Player plays a short tone per reaction through the default audio device.
type Player struct {
	tone *beep.Buffer
}

// NewPlayer opens the speaker and renders the tone once.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	tone, err := Tone(sampleRate, toneFreq, toneDuration)
	if err != nil {
		speaker.Close()
		return nil, err
	}
	return &Player{tone: tone}, nil
}

// Tone renders a sine tone of the given frequency and length into a buffer.
func Tone(sr beep.SampleRate, freq int, d time.Duration) (*beep.Buffer, error) {
	sine, err := generators.SineTone(sr, float64(freq))
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(sr.N(d), sine))
	return buf, nil
}

// Play queues the tone. It does not block the caller.
func (p *Player) Play() {
	speaker.Play(p.tone.Streamer(0, p.tone.Len()))
}

func (p *Player) Close() {
	speaker.Close()
}
