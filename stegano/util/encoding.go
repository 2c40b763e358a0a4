package util
import "fmt"

/*
 * transform values from/to fixed 9-character binary codes.
 * a code is big-endian ('0'/'1' per bit, most significant first) and
 * splits into three 3-bit segments, one per colour channel.
 */
const (
	SegmentSize     = 3
	CodeSize        = 9
	SegmentsPerCode = CodeSize / SegmentSize

	// largest value a code can carry; bytes only use the lower half.
	MaxCodeValue = 1<<CodeSize - 1
)

// Segment holds 3 bits destined for (or read from) one colour channel.
type Segment [SegmentSize]byte

// Code is the binary expansion of one value, most significant bit first.
type Code [CodeSize]byte

// SegmentOf builds a segment from the low 3 bits of v.
func SegmentOf(v uint8) Segment {
	var s Segment
	for i := 0; i < SegmentSize; i++ {
		s[i] = '0' + (v>>uint(SegmentSize-1-i))&1
	}
	return s
}

// Value returns the segment as an integer in [0, 7].
func (s Segment) Value() uint8 {
	v := uint8(0)
	for _, c := range s {
		v = v<<1 | (c - '0')
	}
	return v
}

func (s Segment) String() string {
	return string(s[:])
}

func (c Code) String() string {
	return string(c[:])
}

// Segments splits the code into characters 0-2, 3-5 and 6-8.
func (c Code) Segments() [SegmentsPerCode]Segment {
	var res [SegmentsPerCode]Segment
	for i := range res {
		copy(res[i][:], c[i*SegmentSize:(i+1)*SegmentSize])
	}
	return res
}

// Value returns the integer the code represents, in [0, MaxCodeValue].
func (c Code) Value() int {
	v := 0
	for _, b := range c {
		v = v<<1 | int(b-'0')
	}
	return v
}

// JoinSegments is the inverse of Code.Segments.
func JoinSegments(a, b, c Segment) Code {
	var code Code
	copy(code[0:3], a[:])
	copy(code[3:6], b[:])
	copy(code[6:9], c[:])
	return code
}

// place values 256, 128, ..., 1 subtracted in turn.
func valueToCode(v int) Code {
	var code Code
	base := 1 << (CodeSize - 1)
	for i := 0; i < CodeSize; i++ {
		if v >= base {
			v -= base
			code[i] = '1'
		} else {
			code[i] = '0'
		}
		base /= 2
	}
	return code
}

// ByteToBits expands a byte value into its 9-bit code. The leading bit of a
// valid byte is always '0'.
func ByteToBits(value int) (Code, error) {
	if value < 0 || value > 255 {
		return Code{}, fmt.Errorf("%w: %d is not in [0, 255]", ErrInvalidByteValue, value)
	}
	return valueToCode(value), nil
}

// ParseCode validates a 9-character binary string.
func ParseCode(bits string) (Code, error) {
	var code Code
	if len(bits) != CodeSize {
		return code, fmt.Errorf("%w: length %d, expected %d", ErrInvalidBitString, len(bits), CodeSize)
	}
	for i := 0; i < CodeSize; i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return code, fmt.Errorf("%w: %q at position %d", ErrInvalidBitString, bits[i], i)
		}
		code[i] = bits[i]
	}
	return code, nil
}

// BitsToByte reconstructs the value of a 9-character binary string.
// Header codes use all 9 bits, so the result may exceed 255.
func BitsToByte(bits string) (int, error) {
	code, err := ParseCode(bits)
	if err != nil {
		return 0, err
	}
	return code.Value(), nil
}
