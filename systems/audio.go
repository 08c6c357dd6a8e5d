package systems

import (
	"math"

	cfg "github.com/harvestgames/orchard/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundID names one of the synthesized effects.
type SoundID int

const (
	SoundCollect SoundID = iota
	SoundRotten
	SoundJump
	SoundGameOver
)

var (
	audioCtx *audio.Context
	sfx      map[SoundID][]byte
	muted    bool
)

// InitAudio creates the audio context and synthesizes the effect
// buffers. Without it PlaySFX is a no-op, which keeps headless runs
// silent instead of crashing.
func InitAudio() {
	if audioCtx != nil {
		return
	}
	audioCtx = audio.NewContext(cfg.Sound.SampleRate)
	sfx = map[SoundID][]byte{
		SoundCollect:  appendPCM(tone(880, 0.07, 8), tone(1318, 0.12, 10)),
		SoundRotten:   tone(130, 0.25, 12),
		SoundJump:     sweep(300, 700, 0.12),
		SoundGameOver: appendPCM(tone(440, 0.15, 6), tone(330, 0.15, 6), tone(220, 0.3, 5)),
	}
}

// SetMuted toggles effect playback.
func SetMuted(m bool) { muted = m }

// Muted reports whether effects are suppressed.
func Muted() bool { return muted }

// PlaySFX fires one effect and forgets the player.
func PlaySFX(id SoundID) {
	if audioCtx == nil || muted {
		return
	}
	buf, ok := sfx[id]
	if !ok {
		return
	}
	p := audioCtx.NewPlayerFromBytes(buf)
	p.SetVolume(cfg.Sound.Volume)
	p.Play()
}

// tone renders a decaying sine as 16-bit stereo little-endian PCM.
func tone(freq, duration, decay float64) []byte {
	n := int(float64(cfg.Sound.SampleRate) * duration)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(cfg.Sound.SampleRate)
		v := math.Sin(2*math.Pi*freq*t) * math.Exp(-decay*t)
		writeSample(buf, i, v)
	}
	return buf
}

// sweep renders a linear frequency glide, used for the jump chirp.
func sweep(from, to, duration float64) []byte {
	n := int(float64(cfg.Sound.SampleRate) * duration)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := from + (to-from)*t
		phase += 2 * math.Pi * freq / float64(cfg.Sound.SampleRate)
		v := math.Sin(phase) * (1 - t)
		writeSample(buf, i, v)
	}
	return buf
}

func writeSample(buf []byte, i int, v float64) {
	s := int16(v * 0.6 * math.MaxInt16)
	buf[i*4] = byte(s)
	buf[i*4+1] = byte(s >> 8)
	buf[i*4+2] = byte(s)
	buf[i*4+3] = byte(s >> 8)
}

func appendPCM(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
