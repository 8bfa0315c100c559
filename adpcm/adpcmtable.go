package adpcm

const STEP_MIN = 0x7f
const STEP_MAX = 0x6000

var diffLookup = [16]int{
	1, 3, 5, 7, 9, 11, 13, 15,
	-1, -3, -5, -7, -9, -11, -13, -15,
}

// The upper half repeats the lower half so a full 4-bit nibble can index
// the table without masking off its sign bit.
var indexScale = [16]int{
	0x0e6, 0x0e6, 0x0e6, 0x0e6, 0x133, 0x199, 0x200, 0x266,
	0x0e6, 0x0e6, 0x0e6, 0x0e6, 0x133, 0x199, 0x200, 0x266,
}

func limit(val int, min int, max int) int {
	if val < min {
		return min
	} else if val > max {
		return max
	} else {
		return val
	}
}

func iabs(x int) int {
	if x < 0 {
		return -x
	} else {
		return x
	}
}
