package alert

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/hammamikhairi/ottopomo/internal/domain"
)

// Audio parameters shared by the player, the chime and loaded sounds.
const (
	SampleRate   = 24000
	ChannelCount = 1
	BitDepth     = 16
)

const (
	wavHeaderSize = 44
	wavFormatPCM  = 1
)

// LoadSound reads a WAV file and checks that it matches the player format.
func LoadSound(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sound %s: %w", path, err)
	}
	if _, err := extractPCM(data); err != nil {
		return nil, fmt.Errorf("sound %s: %w", path, err)
	}
	return data, nil
}

// EncodeWAV wraps raw 16-bit mono PCM in a canonical RIFF/WAVE header.
func EncodeWAV(pcm []byte) []byte {
	const blockAlign = ChannelCount * BitDepth / 8

	out := make([]byte, 0, wavHeaderSize+len(pcm))
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(36+len(pcm)))
	out = append(out, "WAVE"...)

	out = append(out, "fmt "...)
	out = binary.LittleEndian.AppendUint32(out, 16)
	out = binary.LittleEndian.AppendUint16(out, wavFormatPCM)
	out = binary.LittleEndian.AppendUint16(out, ChannelCount)
	out = binary.LittleEndian.AppendUint32(out, SampleRate)
	out = binary.LittleEndian.AppendUint32(out, SampleRate*blockAlign)
	out = binary.LittleEndian.AppendUint16(out, blockAlign)
	out = binary.LittleEndian.AppendUint16(out, BitDepth)

	out = append(out, "data"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(pcm)))
	return append(out, pcm...)
}

// extractPCM strips the WAV/RIFF header and returns raw PCM data. The fmt
// chunk must precede the data chunk and describe the player's format.
func extractPCM(wav []byte) ([]byte, error) {
	if len(wav) < wavHeaderSize {
		return nil, errors.New("wav data too short")
	}

	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return nil, errors.New("not a valid WAV file")
	}

	sawFormat := false
	pos := 12
	for pos < len(wav)-8 {
		chunkID := string(wav[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(wav[pos+4 : pos+8]))
		body := wav[pos+8:]

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 || len(body) < 16 {
				return nil, errors.New("fmt chunk too short")
			}
			if err := checkFormat(body); err != nil {
				return nil, err
			}
			sawFormat = true
		case "data":
			if !sawFormat {
				return nil, errors.New("data chunk before fmt chunk")
			}
			end := min(chunkSize, len(body))
			return body[:end], nil
		}

		pos += 8 + chunkSize
		// Chunks are word-aligned.
		if chunkSize%2 != 0 {
			pos++
		}
	}

	return nil, errors.New("data chunk not found in WAV")
}

func checkFormat(fmtChunk []byte) error {
	audioFormat := binary.LittleEndian.Uint16(fmtChunk[0:2])
	channels := binary.LittleEndian.Uint16(fmtChunk[2:4])
	rate := binary.LittleEndian.Uint32(fmtChunk[4:8])
	bits := binary.LittleEndian.Uint16(fmtChunk[14:16])

	if audioFormat != wavFormatPCM || channels != ChannelCount || rate != SampleRate || bits != BitDepth {
		return fmt.Errorf("%w: format=%d channels=%d rate=%d bits=%d (want PCM, %d channel, %d Hz, %d-bit)",
			domain.ErrUnsupportedFormat, audioFormat, channels, rate, bits, ChannelCount, SampleRate, BitDepth)
	}
	return nil
}
