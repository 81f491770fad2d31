package main

import (
	"bytes"
	"log"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	chimeSampleRate = 44100
	chimeAmplitude  = 0.25
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// initAudioContext initializes the global audio context once
func initAudioContext() {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   chimeSampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("Audio context initialized successfully")
	})
}

// playChime plays a short two-tone confirmation chime. The samples are
// synthesized in memory, so no audio asset ships with the binary.
func playChime() {
	go func() {
		initAudioContext()

		if !audioCtxReady || globalAudioCtx == nil {
			log.Printf("Audio context not ready")
			return
		}

		player := globalAudioCtx.NewPlayer(bytes.NewReader(chimeSamples()))
		player.Play()

		for player.IsPlaying() {
			time.Sleep(time.Millisecond)
		}

		if err := player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}
	}()
}

// chimeSamples synthesizes the chime as signed 16-bit little-endian mono PCM:
// two rising sine tones with a linear fade to avoid clicks.
func chimeSamples() []byte {
	tones := []struct {
		freq     float64
		duration time.Duration
	}{
		{880, 120 * time.Millisecond},
		{1174.66, 180 * time.Millisecond},
	}

	var data []byte
	for _, tone := range tones {
		samples := int(float64(chimeSampleRate) * tone.duration.Seconds())
		for i := 0; i < samples; i++ {
			fade := 1.0 - float64(i)/float64(samples)
			v := chimeAmplitude * fade * math.Sin(2*math.Pi*tone.freq*float64(i)/chimeSampleRate)
			sample := int16(v * math.MaxInt16)
			data = append(data, byte(sample), byte(sample>>8))
		}
	}

	return data
}
