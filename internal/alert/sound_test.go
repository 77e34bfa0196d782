package alert

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// fakePlayer records the PCM it was handed. With hold set, Play blocks until
// its context is done.
type fakePlayer struct {
	mu     sync.Mutex
	played [][]byte
	err    error
	hold   bool
}

func (p *fakePlayer) Play(ctx context.Context, pcm io.Reader) error {
	data, err := io.ReadAll(pcm)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.played = append(p.played, data)
	hold := p.hold
	p.mu.Unlock()

	if hold {
		<-ctx.Done()
		return ctx.Err()
	}
	return p.err
}

func (p *fakePlayer) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.played)
}

func TestSoundAlerterPlaysChimeByDefault(t *testing.T) {
	player := &fakePlayer{}
	a, err := NewSoundAlerter(player, nil, logger.New(logger.LevelOff, nil))
	require.NoError(t, err)

	require.NoError(t, a.Alert(context.Background(), domain.Completion{CountdownID: "c1"}))
	require.Len(t, player.played, 1)

	want, err := extractPCM(Chime())
	require.NoError(t, err)
	assert.Equal(t, want, player.played[0])
}

func TestSoundAlerterPlaysCustomSound(t *testing.T) {
	pcm := []byte{1, 2, 3, 4}
	player := &fakePlayer{}
	a, err := NewSoundAlerter(player, EncodeWAV(pcm), logger.New(logger.LevelOff, nil))
	require.NoError(t, err)

	require.NoError(t, a.Alert(context.Background(), domain.Completion{}))
	assert.Equal(t, pcm, player.played[0])
}

func TestSoundAlerterRejectsBadWAV(t *testing.T) {
	_, err := NewSoundAlerter(&fakePlayer{}, []byte("not a wav"), logger.New(logger.LevelOff, nil))
	assert.Error(t, err)
}

func TestSoundAlerterReturnsPlayerError(t *testing.T) {
	player := &fakePlayer{err: errors.New("device gone")}
	a, err := NewSoundAlerter(player, nil, logger.New(logger.LevelOff, nil))
	require.NoError(t, err)

	assert.EqualError(t, a.Alert(context.Background(), domain.Completion{}), "device gone")
}

func TestSoundAlerterStopsOnCancel(t *testing.T) {
	player := &fakePlayer{hold: true}
	a, err := NewSoundAlerter(player, nil, logger.New(logger.LevelOff, nil))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, a.Alert(ctx, domain.Completion{}), context.DeadlineExceeded)
}

func TestSoundAlerterOverlappingAlertsCancelIndependently(t *testing.T) {
	player := &fakePlayer{hold: true}
	a, err := NewSoundAlerter(player, EncodeWAV([]byte{9, 9}), logger.New(logger.LevelOff, nil))
	require.NoError(t, err)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	secondCtx, cancelSecond := context.WithCancel(context.Background())
	defer cancelSecond()

	first := make(chan error, 1)
	second := make(chan error, 1)
	go func() { first <- a.Alert(firstCtx, domain.Completion{CountdownID: "a"}) }()
	go func() { second <- a.Alert(secondCtx, domain.Completion{CountdownID: "b"}) }()

	require.Eventually(t, func() bool { return player.count() == 2 }, time.Second, time.Millisecond)

	cancelFirst()
	select {
	case err := <-first:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("first alert did not stop after its context was cancelled")
	}

	select {
	case <-second:
		t.Fatal("cancelling one alert stopped the other")
	case <-time.After(20 * time.Millisecond):
	}

	cancelSecond()
	assert.ErrorIs(t, <-second, context.Canceled)

	// Each alert read the full sound from its own reader.
	player.mu.Lock()
	defer player.mu.Unlock()
	assert.Equal(t, []byte{9, 9}, player.played[0])
	assert.Equal(t, []byte{9, 9}, player.played[1])
}
