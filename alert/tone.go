package alert

import (
	"encoding/binary"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ORKTech/ADAS-Level-1-Simulation/config"
)

// TonePlayer synthesizes beep patterns through the raylib audio device.
// One sound per priority level is generated up front; Play fires it once per
// pulse with the pattern's gaps in between. When no audio device is available
// the player stays silent.
type TonePlayer struct {
	ready  bool
	sounds map[int]rl.Sound
}

// NewTonePlayer initializes the audio device and pre-renders the pattern
// tones. Call Unload when done.
func NewTonePlayer() *TonePlayer {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return &TonePlayer{}
	}

	sampleRate := config.Cfg().Audio.SampleRate
	p := &TonePlayer{ready: true, sounds: make(map[int]rl.Sound, 3)}
	for priority := 1; priority <= 3; priority++ {
		pulse := Pattern(priority)[0]
		wave := sineWave(pulse.FreqHz, pulse.Duration, sampleRate)
		p.sounds[priority] = rl.LoadSoundFromWave(wave)
	}
	return p
}

// Play runs the full pattern for a priority, blocking for its duration.
// The dispatcher calls this on its worker goroutine.
func (p *TonePlayer) Play(priority int) {
	if !p.ready {
		return
	}
	if priority > 3 {
		priority = 3
	}
	sound, ok := p.sounds[priority]
	if !ok {
		return
	}

	for _, pulse := range Pattern(priority) {
		rl.PlaySound(sound)
		time.Sleep(pulse.Duration)
		if pulse.Gap > 0 {
			time.Sleep(pulse.Gap)
		}
	}
}

// Unload releases the sounds and closes the audio device.
func (p *TonePlayer) Unload() {
	if !p.ready {
		return
	}
	for _, sound := range p.sounds {
		rl.UnloadSound(sound)
	}
	rl.CloseAudioDevice()
}

// sineWave renders a mono 16-bit sine tone with a short linear fade at both
// ends to avoid clicks.
func sineWave(freqHz float64, duration time.Duration, sampleRate int) rl.Wave {
	frames := int(float64(sampleRate) * duration.Seconds())
	fade := sampleRate / 100 // 10 ms
	if fade > frames/2 {
		fade = frames / 2
	}

	data := make([]byte, frames*2)
	for i := 0; i < frames; i++ {
		v := math.Sin(2 * math.Pi * freqHz * float64(i) / float64(sampleRate))

		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if frames-i <= fade {
			env = float64(frames-i) / float64(fade)
		}

		sample := int16(v * env * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(data[i*2:], uint16(sample))
	}

	return rl.NewWave(uint32(frames), uint32(sampleRate), 16, 1, data)
}
