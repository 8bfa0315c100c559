// Package audioconvert holds the small PCM transforms shared by the wav
// container layer, the converter, and the sample loader.
package audioconvert

import (
	"bytes"
	"encoding/binary"
)

func EncodeSamples(data []int16, order binary.ByteOrder) []byte {
	var buffer bytes.Buffer

	for _, val := range data {
		binary.Write(&buffer, order, &val)
	}

	return buffer.Bytes()
}

func DecodeSamples(data []byte, order binary.ByteOrder) []int16 {
	var buffer = bytes.NewBuffer(data)
	var result = make([]int16, len(data)/2)

	for index := range result {
		binary.Read(buffer, order, &result[index])
	}

	return result
}
