package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

type SeekableReader interface {
	Read(p []byte) (n int, err error)
	Seek(offset int64, whence int) (ret int64, err error)
}

var ErrBadMagic = errors.New("not a RIFF WAVE stream")
var ErrTruncated = errors.New("truncated chunk")
var ErrMissingChunk = errors.New("missing fmt or data chunk")

func parseHeader(reader SeekableReader, header *WaveHeader) error {
	return binary.Read(reader, binary.LittleEndian, header)
}

func parseData(reader SeekableReader, length uint32) ([]byte, error) {
	var result = make([]byte, length)

	_, err := io.ReadFull(reader, result)

	if err != nil {
		return nil, ErrTruncated
	}

	return result, nil
}

func parseLoop(reader SeekableReader, wave *Wave) error {
	// Nine reserved words precede the first loop record.
	var reserved [9]uint32
	err := binary.Read(reader, binary.LittleEndian, &reserved)

	if err != nil {
		return ErrTruncated
	}

	// Identifier, type, start, end, fraction, play count. Only the
	// middle three matter here.
	var record [6]uint32
	err = binary.Read(reader, binary.LittleEndian, &record)

	if err != nil {
		return ErrTruncated
	}

	wave.Loop.Type = record[1]
	wave.Loop.Start = record[2]
	wave.Loop.End = record[3]

	if wave.Loop.Type == LOOP_FORWARD && wave.Loop.End > 0 {
		wave.Loop.HasLoop = true
	}

	var total = wave.SampleCount()

	if wave.Loop.Start > total {
		wave.Loop.Start = 0
	}

	if wave.Loop.End > total {
		wave.Loop.End = total
	}

	return nil
}

// Parse walks the RIFF chunk list sequentially. Unknown chunks are
// skipped by their declared length; a smpl chunk ends the walk.
func Parse(reader SeekableReader) (*Wave, error) {
	var result Wave

	var header uint32
	err := binary.Read(reader, binary.BigEndian, &header)

	if err != nil {
		return nil, err
	}

	if header != RIFF_HEADER {
		return nil, ErrBadMagic
	}

	var chunkSize uint32
	binary.Read(reader, binary.LittleEndian, &chunkSize)

	err = binary.Read(reader, binary.BigEndian, &header)

	if err != nil || header != WAVE_FORMAT {
		return nil, ErrBadMagic
	}

	total, err := reader.Seek(0, io.SeekEnd)

	if err != nil {
		return nil, err
	}

	_, err = reader.Seek(12, io.SeekStart)

	if err != nil {
		return nil, err
	}

	var hasHeader = false
	var hasData = false

	for {
		err = binary.Read(reader, binary.BigEndian, &header)

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}

		if err != nil {
			return nil, err
		}

		err = binary.Read(reader, binary.LittleEndian, &chunkSize)

		if err != nil {
			return nil, ErrTruncated
		}

		startPos, _ := reader.Seek(0, io.SeekCurrent)

		if startPos+int64(chunkSize) > total {
			return nil, ErrTruncated
		}

		if header == FORMAT_HEADER {
			if hasHeader {
				return nil, errors.New("duplicate fmt chunk")
			}

			err = parseHeader(reader, &result.Header)

			if err != nil {
				return nil, ErrTruncated
			}

			if result.Header.Format != FORMAT_PCM && result.Header.Format != FORMAT_AICA_ADPCM {
				return nil, fmt.Errorf("unsupported format code %d", result.Header.Format)
			}

			if result.Header.NChannels != 1 && result.Header.NChannels != 2 {
				return nil, fmt.Errorf("unsupported channel count %d", result.Header.NChannels)
			}

			hasHeader = true
		} else if header == DATA_HEADER {
			if !hasHeader {
				return nil, errors.New("data chunk before fmt chunk")
			}

			result.Data, err = parseData(reader, chunkSize)

			if err != nil {
				return nil, err
			}

			hasData = true
		} else if header == SMPL_HEADER {
			err = parseLoop(reader, &result)

			if err != nil {
				return nil, err
			}

			break
		}

		reader.Seek(startPos+int64(chunkSize), io.SeekStart)
	}

	if !hasHeader || !hasData {
		return nil, ErrMissingChunk
	}

	return &result, nil
}
