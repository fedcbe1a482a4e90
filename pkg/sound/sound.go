// Package sound plays notification audio through the default output
// device. The context is created once on first use.
package sound

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
)

const sampleRate = 44100

var octx *oto.Context

func Init() error {
	op := &oto.NewContextOptions{}

	// Usually 44100 or 48000. Other values might cause distortions in Oto
	op.SampleRate = sampleRate

	// 1 is mono sound, and 2 is stereo (most speakers are stereo).
	op.ChannelCount = 2

	// go-mp3 and our generated tones are signed 16bit integers.
	op.Format = oto.FormatSignedInt16LE

	// Remember that you should **not** create more than one context
	otoCtx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("sound.Init failed: %w", err)
	}
	// It might take a bit for the hardware audio devices to be ready, so we wait on the channel.
	select {
	case <-readyChan:
		octx = otoCtx
		return nil
	case <-time.After(10 * time.Second):
		return fmt.Errorf("sound.Init timed out")
	}
}

// NewPlayer creates a player for the given stream. Paused by default.
func NewPlayer(r io.Reader) (*oto.Player, error) {
	if octx == nil {
		if err := Init(); err != nil {
			return nil, err
		}
	}
	return octx.NewPlayer(r), nil
}

// Beep plays a short sine tone at the given frequency. It returns as
// soon as playback has started.
func Beep(freq float64, dur time.Duration) error {
	player, err := NewPlayer(bytes.NewReader(tone(freq, dur)))
	if err != nil {
		return err
	}
	playAndClose(player)
	return nil
}

// Notify plays the default two-tone chime used for threshold alerts.
func Notify() error {
	buf := append(tone(880, 90*time.Millisecond), tone(1320, 140*time.Millisecond)...)
	player, err := NewPlayer(bytes.NewReader(buf))
	if err != nil {
		return err
	}
	playAndClose(player)
	return nil
}

// PlayFile decodes and plays an mp3 from disk. It returns once playback
// has started.
func PlayFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	decoded, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("mp3.NewDecoder failed: %w", err)
	}
	player, err := NewPlayer(decoded)
	if err != nil {
		f.Close()
		return err
	}
	go func() {
		defer f.Close()
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Printf("player.Close failed: %v", err)
		}
	}()
	return nil
}

func playAndClose(player *oto.Player) {
	go func() {
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Printf("player.Close failed: %v", err)
		}
	}()
}

// tone renders a sine wave as interleaved stereo signed 16bit LE samples
// with a short linear fade at both ends to avoid clicks.
func tone(freq float64, dur time.Duration) []byte {
	n := int(float64(sampleRate) * dur.Seconds())
	fade := sampleRate / 100
	if fade > n/2 {
		fade = n / 2
	}
	buf := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		gain := 1.0
		if i < fade {
			gain = float64(i) / float64(fade)
		} else if n-i < fade {
			gain = float64(n-i) / float64(fade)
		}
		s := int16(v * gain * 0.6 * math.MaxInt16)
		var sample [2]byte
		binary.LittleEndian.PutUint16(sample[:], uint16(s))
		buf = append(buf, sample[0], sample[1], sample[0], sample[1])
	}
	return buf
}
