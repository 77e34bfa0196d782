// Package alert turns a completed countdown into something the user
// notices: a sound, a line of text, a terminal bell. Alerts run outside the
// engine and their failures are only ever logged.
package alert

import (
	"bytes"
	"context"
	"io"

	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Alerter = (*SoundAlerter)(nil)
	_ PCMPlayer      = (*Player)(nil)
)

// PCMPlayer plays raw PCM until the stream ends or ctx is done.
type PCMPlayer interface {
	Play(ctx context.Context, pcm io.Reader) error
}

// SoundAlerter plays a sound through a player when a countdown completes.
type SoundAlerter struct {
	player PCMPlayer
	pcm    []byte
	log    *logger.Logger
}

// NewSoundAlerter creates an alerter that plays wav. A nil wav plays the
// built-in chime. The WAV is decoded once, here.
func NewSoundAlerter(player PCMPlayer, wav []byte, log *logger.Logger) (*SoundAlerter, error) {
	if wav == nil {
		wav = Chime()
	}
	pcm, err := extractPCM(wav)
	if err != nil {
		return nil, err
	}
	return &SoundAlerter{player: player, pcm: pcm, log: log}, nil
}

// Alert plays the sound. Blocks until playback ends; cancelling ctx cuts it
// short.
func (s *SoundAlerter) Alert(ctx context.Context, c domain.Completion) error {
	err := s.player.Play(ctx, bytes.NewReader(s.pcm))
	if ctx.Err() != nil {
		s.log.Debug("alert: sound for countdown %s interrupted", c.CountdownID)
	}
	return err
}
