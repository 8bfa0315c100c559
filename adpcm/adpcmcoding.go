// Package adpcm implements the Yamaha AICA 4-bit adaptive differential
// PCM codec. Samples pack two per byte, low nibble first. Every call
// starts from a fresh predictor (signal 0, step 0x7f), so a logical
// stream must be encoded or decoded in a single call.
package adpcm

func encodeNibble(sample int, signal int, step int) (int, int, int) {
	var diff = sample - signal
	diff = (diff * 8) / step

	var val = iabs(diff) / 2

	if val > 7 {
		val = 7
	}

	if diff < 0 {
		val += 8
	}

	signal += (step * diffLookup[val]) / 8
	signal = limit(signal, -32768, 32767)

	step = (step * indexScale[val]) >> 8
	step = limit(step, STEP_MIN, STEP_MAX)

	return val, signal, step
}

func decodeNibble(val int, signal int, step int) (int, int) {
	signal += (step * diffLookup[val]) / 8
	signal = limit(signal, -32768, 32767)

	step = (step * indexScale[val&7]) >> 8
	step = limit(step, STEP_MIN, STEP_MAX)

	return signal, step
}

// Encode compresses 16 bit samples into packed nibbles. The input must
// have an even number of samples; a trailing odd sample is not consumed.
func Encode(pcm []int16) []byte {
	var signal = 0
	var step = STEP_MIN

	var result = make([]byte, len(pcm)/2)

	for i := 0; i+1 < len(pcm); i = i + 2 {
		var low, high int

		low, signal, step = encodeNibble(int(pcm[i]), signal, step)
		high, signal, step = encodeNibble(int(pcm[i+1]), signal, step)

		result[i/2] = uint8(low) | uint8(high)<<4
	}

	return result
}

// Decode expands packed nibbles back into 16 bit samples, two per input
// byte.
func Decode(data []byte) []int16 {
	var signal = 0
	var step = STEP_MIN

	var result = make([]int16, 0, len(data)*2)

	for _, packed := range data {
		signal, step = decodeNibble(int(packed&15), signal, step)
		result = append(result, int16(signal))

		signal, step = decodeNibble(int(packed>>4)&15, signal, step)
		result = append(result, int16(signal))
	}

	return result
}
