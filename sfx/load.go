package sfx

import (
	"bytes"
	"encoding/binary"

	"github.com/dcaudio/aicasfx/audioconvert"
	"github.com/dcaudio/aicasfx/wav"
)

// Load reads a WAV sample through the engine's filesystem and places it
// in device memory.
func (engine *Engine) Load(name string) (Handle, error) {
	return engine.LoadStream(name, engine.fs)
}

// LoadStream is Load against a caller supplied stream capability.
func (engine *Engine) LoadStream(name string, fs FileSystem) (Handle, error) {
	stream, err := fs.Open(name)

	if err != nil {
		return Handle{}, err
	}

	defer stream.Close()

	var source *wav.Wave

	// Mapped streams parse in place; everything else goes through the
	// buffered path.
	if view, ok := stream.(Mappable); ok {
		if data, mapped := view.Map(); mapped {
			source, err = wav.Parse(bytes.NewReader(data))
		} else {
			source, err = wav.Parse(stream)
		}
	} else {
		source, err = wav.Parse(stream)
	}

	if err != nil {
		return Handle{}, err
	}

	return engine.loadWave(source)
}

func (engine *Engine) loadWave(source *wav.Wave) (Handle, error) {
	var stereo = source.Header.NChannels == 2

	if stereo && source.Header.Format == wav.FORMAT_PCM && source.Header.BlockAlign < 2 {
		// 8 bit stereo is not supported.
		return Handle{}, ErrUnsupportedFormat
	}

	var format SampleFormat

	if source.Header.Format == wav.FORMAT_AICA_ADPCM {
		format = FormatADPCM
	} else if stereo || source.Header.BlockAlign == 2 {
		format = FormatPCM16
	} else {
		format = FormatPCM8
	}

	return engine.LoadRaw(source.Data, format, source.Header.SampleRate, stereo)
}

// LoadRaw places an already decoded or pre-packed sample buffer in
// device memory. Stereo PCM arrives interleaved; stereo ADPCM arrives as
// two independently encoded nibble streams stored back to back.
func (engine *Engine) LoadRaw(data []byte, format SampleFormat, rate uint32, stereo bool) (Handle, error) {
	if len(data) == 0 {
		return Handle{}, ErrInvalidData
	}

	if !stereo {
		var length = uint32(len(data))

		if format != FormatPCM8 {
			length >>= 1
		}

		if format == FormatADPCM {
			length *= 4
		}

		var eff = effect{
			length: length,
			rate:   rate,
			format: format,
		}

		eff.left = engine.alloc(data)

		return engine.insert(eff), nil
	}

	if format == FormatPCM16 {
		left, right := audioconvert.Deinterleave(
			audioconvert.DecodeSamples(data, binary.LittleEndian))

		var eff = effect{
			length: uint32(len(data)) / 4,
			rate:   rate,
			format: FormatPCM16,
			stereo: true,
		}

		eff.left = engine.alloc(audioconvert.EncodeSamples(left, binary.LittleEndian))
		eff.right = engine.alloc(audioconvert.EncodeSamples(right, binary.LittleEndian))

		return engine.insert(eff), nil
	}

	if format == FormatADPCM {
		var half = len(data) / 2

		var eff = effect{
			length: uint32(len(data)),
			rate:   rate,
			format: FormatADPCM,
			stereo: true,
		}

		eff.left = engine.alloc(data[0:half])
		eff.right = engine.alloc(data[half:])

		return engine.insert(eff), nil
	}

	return Handle{}, ErrUnsupportedFormat
}

// alloc reserves device memory and copies the sample in. A zero handle
// means the reservation failed; the load still succeeds and playback of
// that side is the caller's risk.
func (engine *Engine) alloc(data []byte) BufferHandle {
	var handle = engine.mem.Alloc(uint32(len(data)))

	if handle != 0 {
		engine.mem.Load(handle, data)
	}

	return handle
}
