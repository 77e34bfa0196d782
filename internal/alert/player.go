package alert

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// drainPoll is how often Play checks whether the device has consumed the
// whole stream.
const drainPoll = 10 * time.Millisecond

// Player writes alert PCM (SampleRate, mono, 16-bit LE) to the audio
// device. Every Play call gets its own oto player, so overlapping alerts
// mix and are cancelled independently.
type Player struct {
	device *oto.Context
	log    *logger.Logger
}

// NewPlayer opens the audio device. oto allows one context per process, so
// call it once and share the Player.
func NewPlayer(log *logger.Logger) (*Player, error) {
	device, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAudioUnavailable, err)
	}
	<-ready

	log.Debug("audio device ready (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{device: device, log: log}, nil
}

// Play streams pcm to the device. Blocks until the stream has played out
// or ctx is done; in the latter case playback is paused and ctx.Err() is
// returned.
func (p *Player) Play(ctx context.Context, pcm io.Reader) error {
	out := p.device.NewPlayer(pcm)
	out.Play()

	poll := time.NewTicker(drainPoll)
	defer poll.Stop()

	for out.IsPlaying() {
		select {
		case <-ctx.Done():
			out.Pause()
			out.Close()
			return ctx.Err()
		case <-poll.C:
		}
	}
	return out.Close()
}
