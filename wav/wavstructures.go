package wav

const (
	FORMAT_PCM        = 1
	FORMAT_AICA_ADPCM = 20
)

const RIFF_HEADER = 0x52494646
const WAVE_FORMAT = 0x57415645
const FORMAT_HEADER = 0x666d7420
const DATA_HEADER = 0x64617461
const SMPL_HEADER = 0x736d706c

// Forward loops are the only loop type the playback side understands.
const LOOP_FORWARD = 0

type WaveHeader struct {
	Format        uint16
	NChannels     uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// SampleLoop is the part of a smpl chunk that survives parsing. Start
// and End are sample frame offsets.
type SampleLoop struct {
	Type    uint32
	Start   uint32
	End     uint32
	HasLoop bool
}

type Wave struct {
	Header WaveHeader
	Data   []byte
	Loop   SampleLoop
}

// SampleCount reports the payload length in samples: two per byte for
// packed data, one per two bytes for 16 bit PCM. Loop bounds are clamped
// against this value.
func (wave *Wave) SampleCount() uint32 {
	if wave.Header.Format == FORMAT_AICA_ADPCM {
		return uint32(len(wave.Data)) * 2
	}

	return uint32(len(wave.Data)) >> 1
}
