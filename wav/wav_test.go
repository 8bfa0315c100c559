package wav

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pcmHeader() WaveHeader {
	return WaveHeader{
		Format:        FORMAT_PCM,
		NChannels:     1,
		SampleRate:    44100,
		ByteRate:      88200,
		BlockAlign:    2,
		BitsPerSample: 16,
	}
}

func chunk(tag string, payload []byte) []byte {
	var buf bytes.Buffer

	buf.WriteString(tag)
	binary.Write(&buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)

	return buf.Bytes()
}

func riff(chunks ...[]byte) []byte {
	var body bytes.Buffer

	for _, c := range chunks {
		body.Write(c)
	}

	var buf bytes.Buffer

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(body.Len()+4))
	buf.WriteString("WAVE")
	buf.Write(body.Bytes())

	return buf.Bytes()
}

func smplPayload(loopType uint32, start uint32, end uint32) []byte {
	var buf bytes.Buffer

	var reserved [9]uint32
	binary.Write(&buf, binary.LittleEndian, &reserved)
	binary.Write(&buf, binary.LittleEndian, &[6]uint32{0, loopType, start, end, 0, 0})

	return buf.Bytes()
}

func TestParseCanonical(t *testing.T) {
	var header = pcmHeader()
	var data = []byte{1, 0, 2, 0, 3, 0, 4, 0}

	wave, err := Parse(bytes.NewReader(riff(
		chunk("fmt ", generateHeader(&header)),
		chunk("data", data),
	)))

	require.NoError(t, err)
	assert.Equal(t, header, wave.Header)
	assert.Equal(t, data, wave.Data)
	assert.False(t, wave.Loop.HasLoop)
	assert.Equal(t, uint32(4), wave.SampleCount())
}

func TestParseSkipsUnknownChunks(t *testing.T) {
	var header = pcmHeader()

	wave, err := Parse(bytes.NewReader(riff(
		chunk("LIST", []byte("some metadata")),
		chunk("fmt ", generateHeader(&header)),
		chunk("JUNK", make([]byte, 7)),
		chunk("data", []byte{1, 0, 2, 0}),
	)))

	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 2, 0}, wave.Data)
}

func TestParseLoopChunkEndsWalk(t *testing.T) {
	var header = pcmHeader()

	var stream = riff(
		chunk("fmt ", generateHeader(&header)),
		chunk("data", make([]byte, 16)),
		chunk("smpl", smplPayload(LOOP_FORWARD, 2, 6)),
	)

	// A garbage chunk after smpl must never be inspected.
	stream = append(stream, []byte("bogu")...)
	stream = append(stream, 0xff, 0xff, 0x00, 0x00)

	wave, err := Parse(bytes.NewReader(stream))

	require.NoError(t, err)
	assert.True(t, wave.Loop.HasLoop)
	assert.Equal(t, uint32(LOOP_FORWARD), wave.Loop.Type)
	assert.Equal(t, uint32(2), wave.Loop.Start)
	assert.Equal(t, uint32(6), wave.Loop.End)
}

func TestParseClampsLoopBounds(t *testing.T) {
	var header = pcmHeader()

	wave, err := Parse(bytes.NewReader(riff(
		chunk("fmt ", generateHeader(&header)),
		chunk("data", make([]byte, 8)),
		chunk("smpl", smplPayload(LOOP_FORWARD, 50, 100)),
	)))

	require.NoError(t, err)
	assert.True(t, wave.Loop.HasLoop)
	assert.Equal(t, uint32(0), wave.Loop.Start)
	assert.Equal(t, uint32(4), wave.Loop.End)
}

func TestParseIgnoresUnsupportedLoopType(t *testing.T) {
	var header = pcmHeader()

	wave, err := Parse(bytes.NewReader(riff(
		chunk("fmt ", generateHeader(&header)),
		chunk("data", make([]byte, 8)),
		chunk("smpl", smplPayload(1, 0, 4)),
	)))

	require.NoError(t, err)
	assert.False(t, wave.Loop.HasLoop)
}

func TestParseDataBeforeFmt(t *testing.T) {
	_, err := Parse(bytes.NewReader(riff(
		chunk("data", []byte{1, 0}),
	)))

	assert.ErrorContains(t, err, "data chunk before fmt chunk")
}

func TestParseMissingData(t *testing.T) {
	var header = pcmHeader()

	_, err := Parse(bytes.NewReader(riff(
		chunk("fmt ", generateHeader(&header)),
	)))

	assert.ErrorIs(t, err, ErrMissingChunk)
}

func TestParseDuplicateFmt(t *testing.T) {
	var header = pcmHeader()

	_, err := Parse(bytes.NewReader(riff(
		chunk("fmt ", generateHeader(&header)),
		chunk("fmt ", generateHeader(&header)),
		chunk("data", []byte{1, 0}),
	)))

	assert.ErrorContains(t, err, "duplicate fmt chunk")
}

func TestParseUnsupportedFormat(t *testing.T) {
	var header = pcmHeader()
	header.Format = 3

	_, err := Parse(bytes.NewReader(riff(
		chunk("fmt ", generateHeader(&header)),
		chunk("data", []byte{1, 0}),
	)))

	assert.ErrorContains(t, err, "unsupported format code")
}

func TestParseUnsupportedChannelCount(t *testing.T) {
	var header = pcmHeader()
	header.NChannels = 6

	_, err := Parse(bytes.NewReader(riff(
		chunk("fmt ", generateHeader(&header)),
		chunk("data", []byte{1, 0}),
	)))

	assert.ErrorContains(t, err, "unsupported channel count")
}

func TestParseBadMagic(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("RIFX\x00\x00\x00\x00WAVE")))
	assert.ErrorIs(t, err, ErrBadMagic)

	_, err = Parse(bytes.NewReader([]byte("RIFF\x04\x00\x00\x00AVI ")))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestParseTruncatedChunk(t *testing.T) {
	var header = pcmHeader()

	var stream = riff(chunk("fmt ", generateHeader(&header)))

	// A data chunk declaring more payload than the stream holds.
	stream = append(stream, []byte("data")...)
	stream = append(stream, 100, 0, 0, 0)
	stream = append(stream, 1, 0, 2, 0)

	_, err := Parse(bytes.NewReader(stream))

	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSerializeLayout(t *testing.T) {
	var wave = Wave{
		Header: pcmHeader(),
		Data:   []byte{1, 0, 2, 0, 3, 0, 4, 0},
	}

	var buf bytes.Buffer
	require.NoError(t, wave.Serialize(&buf))

	var out = buf.Bytes()
	require.Len(t, out, 44+len(wave.Data))

	assert.Equal(t, []byte("RIFF"), out[0:4])
	assert.Equal(t, []byte("WAVE"), out[8:12])
	assert.Equal(t, []byte("fmt "), out[12:16])
	assert.Equal(t, []byte("data"), out[36:40])
	assert.Equal(t, uint32(len(out)-8), binary.LittleEndian.Uint32(out[4:8]))
}

func TestSerializeRoundTripWithLoop(t *testing.T) {
	var wave = Wave{
		Header: pcmHeader(),
		Data:   []byte{1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 0, 8, 0},
		Loop:   SampleLoop{Type: LOOP_FORWARD, Start: 2, End: 6, HasLoop: true},
	}

	var buf bytes.Buffer
	require.NoError(t, wave.Serialize(&buf))

	// The smpl chunk adds a tag, a length word and a 0x3c byte payload.
	require.Len(t, buf.Bytes(), 44+len(wave.Data)+8+0x3c)

	parsed, err := Parse(bytes.NewReader(buf.Bytes()))

	require.NoError(t, err)
	assert.Equal(t, wave.Header, parsed.Header)
	assert.Equal(t, wave.Data, parsed.Data)
	assert.Equal(t, wave.Loop, parsed.Loop)
}
