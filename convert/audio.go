// Package convert moves WAV files between 16 bit PCM and the 4 bit
// packed format, carrying loop metadata across.
package convert

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/dcaudio/aicasfx/adpcm"
	"github.com/dcaudio/aicasfx/audioconvert"
	"github.com/dcaudio/aicasfx/wav"
)

func readWave(filename string) (*wav.Wave, error) {
	file, err := os.Open(filename)

	if err != nil {
		return nil, err
	}

	defer file.Close()

	return wav.Parse(file)
}

func writeWave(filename string, wave *wav.Wave) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0664)

	if err != nil {
		return err
	}

	defer file.Close()

	return wave.Serialize(file)
}

// WavToAdpcm compresses a 16 bit PCM wave file. Stereo input is
// deinterleaved and the two channels are encoded back to back as
// independent nibble streams.
func WavToAdpcm(infile string, outfile string) error {
	source, err := readWave(infile)

	if err != nil {
		return err
	}

	if source.Header.Format != wav.FORMAT_PCM {
		return fmt.Errorf("%s should be pcm", infile)
	}

	if source.Header.BlockAlign != 2 {
		return fmt.Errorf("%s should have 16 bit samples", infile)
	}

	var pcm = audioconvert.DecodeSamples(source.Data, binary.LittleEndian)
	var packed []byte

	if source.Header.NChannels == 1 {
		packed = adpcm.Encode(pcm)
	} else {
		left, right := audioconvert.Deinterleave(pcm)
		packed = append(adpcm.Encode(left), adpcm.Encode(right)...)
	}

	var result = wav.Wave{
		Header: source.Header,
		Data:   packed,
		Loop:   source.Loop,
	}

	result.Header.Format = wav.FORMAT_AICA_ADPCM
	result.Header.BitsPerSample = 4

	// With no captured loop region the whole file loops by default,
	// without advertising a smpl chunk.
	if result.Loop.End == 0 {
		result.Loop.Start = 0
		result.Loop.End = source.SampleCount()
		result.Loop.HasLoop = false
	}

	return writeWave(outfile, &result)
}

// AdpcmToWav expands a packed wave file back to 16 bit PCM. A stereo
// payload holds two independent nibble streams which are decoded
// separately and reinterleaved.
func AdpcmToWav(infile string, outfile string) error {
	source, err := readWave(infile)

	if err != nil {
		return err
	}

	if source.Header.Format != wav.FORMAT_AICA_ADPCM || source.Header.BitsPerSample != 4 {
		return fmt.Errorf("%s should be 4 bit adpcm", infile)
	}

	var pcm []int16

	if source.Header.NChannels == 1 {
		pcm = adpcm.Decode(source.Data)
	} else {
		var half = len(source.Data) / 2

		pcm = audioconvert.Interleave(
			adpcm.Decode(source.Data[0:half]),
			adpcm.Decode(source.Data[half:]),
		)
	}

	var result = wav.Wave{
		Header: source.Header,
		Data:   audioconvert.EncodeSamples(pcm, binary.LittleEndian),
		Loop:   source.Loop,
	}

	result.Header.Format = wav.FORMAT_PCM
	result.Header.BitsPerSample = 16
	result.Header.BlockAlign = source.Header.NChannels * 2
	result.Header.ByteRate = result.Header.SampleRate * uint32(result.Header.BlockAlign)

	return writeWave(outfile, &result)
}
