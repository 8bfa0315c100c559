package audioconvert

// Deinterleave splits interleaved stereo samples into two mono streams.
// Even indices go left, odd indices go right. The codec and the playback
// hardware both treat stereo content as two independent mono channels.
func Deinterleave(samples []int16) ([]int16, []int16) {
	var frames = len(samples) / 2

	var left = make([]int16, frames)
	var right = make([]int16, frames)

	for i := 0; i < frames; i = i + 1 {
		left[i] = samples[i*2]
		right[i] = samples[i*2+1]
	}

	return left, right
}

// Interleave is the exact inverse of Deinterleave.
func Interleave(left []int16, right []int16) []int16 {
	var result = make([]int16, len(left)*2)

	for i := 0; i < len(left); i = i + 1 {
		result[i*2] = left[i]
		result[i*2+1] = right[i]
	}

	return result
}
