package util
import "fmt"

/*
 * message framing: a 3-segment header followed by 3 segments per byte.
 * the header does not store the message length but the number of body
 * segments (3 * length). Images written by older versions of the tool
 * rely on that, so it must stay.
 */
const (
	HeaderSegments = SegmentsPerCode

	// largest message whose body segment count fits into the header.
	MaxMessageLength = MaxCodeValue / SegmentsPerCode
)

// Stream is the ordered list of segments written into the channels.
type Stream []Segment

// StreamLength returns the number of segments Encode produces for a message
// of the given length.
func StreamLength(messageLength int) int {
	return HeaderSegments + SegmentsPerCode*messageLength
}

// Encode builds the header and body segments of message.
func Encode(message []byte) (Stream, error) {
	headerValue := SegmentsPerCode * len(message)
	if headerValue > MaxCodeValue {
		return nil, fmt.Errorf("%w: %d bytes, at most %d fit into the header",
			ErrMessageTooLarge, len(message), MaxMessageLength)
	}

	stream := make(Stream, 0, StreamLength(len(message)))
	header := valueToCode(headerValue).Segments()
	stream = append(stream, header[:]...)

	for _, b := range message {
		code, err := ByteToBits(int(b))
		if err != nil {
			return nil, err
		}
		segs := code.Segments()
		stream = append(stream, segs[:]...)
	}
	return stream, nil
}

// DecodeHeader returns the number of body segments announced by the header.
func DecodeHeader(header [HeaderSegments]Segment) int {
	return JoinSegments(header[0], header[1], header[2]).Value()
}

// DecodeBody turns exactly count segments back into bytes. A trailing group
// of fewer than 3 segments is dropped.
func DecodeBody(segments []Segment, count int) ([]byte, error) {
	if count < 0 || len(segments) < count {
		return nil, fmt.Errorf("%w: %d segments available, header announces %d",
			ErrTruncatedStream, len(segments), count)
	}
	result := make([]byte, 0, count/SegmentsPerCode)
	for i := 0; i+SegmentsPerCode <= count; i += SegmentsPerCode {
		code := JoinSegments(segments[i], segments[i+1], segments[i+2])
		v := code.Value()
		if v > 255 {
			// no message was ever written here
			return nil, fmt.Errorf("%w: code %s at byte %d", ErrInvalidByteValue, code, i/SegmentsPerCode)
		}
		result = append(result, byte(v))
	}
	return result, nil
}
