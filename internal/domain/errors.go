package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrUnderflow         = errors.New("duration underflow")
	ErrInvalidLength     = errors.New("invalid countdown length")
	ErrAudioUnavailable  = errors.New("audio output unavailable")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
