// Package audio decodes and encodes the PCM WAV files used as carriers
package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"classic-cipher-backend/models"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

// DecodeWAV returns the interleaved PCM samples of a WAV file.
func DecodeWAV(wavData []byte) ([]int, *models.AudioMetadata, error) {
	decoder := wav.NewDecoder(bytes.NewReader(wavData))
	if !decoder.IsValidFile() {
		return nil, nil, fmt.Errorf("invalid WAV file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode WAV: %w", err)
	}

	channels := int(decoder.NumChans)
	sampleRate := int(decoder.SampleRate)
	if channels == 0 || sampleRate == 0 {
		return nil, nil, fmt.Errorf("WAV file has no channels or sample rate")
	}

	metadata := &models.AudioMetadata{
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   int(decoder.BitDepth),
		Duration:   float64(len(buf.Data)/channels) / float64(sampleRate),
		Samples:    len(buf.Data),
	}

	return buf.Data, metadata, nil
}

// EncodeWAV writes samples as a PCM WAV file.
func EncodeWAV(samples []int, metadata *models.AudioMetadata) ([]byte, error) {
	if metadata == nil || metadata.Channels == 0 || metadata.SampleRate == 0 || metadata.BitDepth == 0 {
		return nil, fmt.Errorf("incomplete audio metadata")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: metadata.Channels,
			SampleRate:  metadata.SampleRate,
		},
		Data:           samples,
		SourceBitDepth: metadata.BitDepth,
	}

	// wav.NewEncoder needs a WriteSeeker
	tempFile, err := os.CreateTemp("", "stego_*.wav")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())
	defer tempFile.Close()

	encoder := wav.NewEncoder(tempFile, metadata.SampleRate, metadata.BitDepth, metadata.Channels, pcmFormat)
	if err := encoder.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to encode WAV: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to close WAV encoder: %w", err)
	}

	if _, err := tempFile.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind WAV data: %w", err)
	}
	wavData, err := io.ReadAll(tempFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV data: %w", err)
	}

	return wavData, nil
}
