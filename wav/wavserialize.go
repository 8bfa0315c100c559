package wav

import (
	"bytes"
	"encoding/binary"
	"io"
)

func generateHeader(header *WaveHeader) []byte {
	var result bytes.Buffer

	binary.Write(&result, binary.LittleEndian, &header.Format)
	binary.Write(&result, binary.LittleEndian, &header.NChannels)
	binary.Write(&result, binary.LittleEndian, &header.SampleRate)
	binary.Write(&result, binary.LittleEndian, &header.ByteRate)
	binary.Write(&result, binary.LittleEndian, &header.BlockAlign)
	binary.Write(&result, binary.LittleEndian, &header.BitsPerSample)

	return result.Bytes()
}

// Serialize writes the canonical 44 byte RIFF/WAVE layout, then a
// minimal smpl chunk when loop metadata was captured. The RIFF size
// field does not count the smpl chunk.
func (wave *Wave) Serialize(out io.Writer) error {
	var header = generateHeader(&wave.Header)

	var headStore uint32
	var chunkSize uint32

	headStore = RIFF_HEADER
	err := binary.Write(out, binary.BigEndian, &headStore)

	if err != nil {
		return err
	}

	chunkSize = uint32(len(header) + len(wave.Data) + 20)
	binary.Write(out, binary.LittleEndian, &chunkSize)

	headStore = WAVE_FORMAT
	binary.Write(out, binary.BigEndian, &headStore)

	headStore = FORMAT_HEADER
	binary.Write(out, binary.BigEndian, &headStore)
	chunkSize = uint32(len(header))
	binary.Write(out, binary.LittleEndian, &chunkSize)
	out.Write(header)

	headStore = DATA_HEADER
	binary.Write(out, binary.BigEndian, &headStore)
	chunkSize = uint32(len(wave.Data))
	binary.Write(out, binary.LittleEndian, &chunkSize)
	_, err = out.Write(wave.Data)

	if err != nil {
		return err
	}

	if wave.Loop.HasLoop {
		return wave.serializeLoop(out)
	}

	return nil
}

func (wave *Wave) serializeLoop(out io.Writer) error {
	var headStore uint32 = SMPL_HEADER
	binary.Write(out, binary.BigEndian, &headStore)

	var chunkSize uint32 = 0x3c
	binary.Write(out, binary.LittleEndian, &chunkSize)

	var reserved [9]uint32
	binary.Write(out, binary.LittleEndian, &reserved)

	var record = [6]uint32{0, wave.Loop.Type, wave.Loop.Start, wave.Loop.End, 0, 0}
	return binary.Write(out, binary.LittleEndian, &record)
}
