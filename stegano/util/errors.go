package util
import "errors"

/*
 * error kinds shared by the codec, the framer and the image layer.
 * callers wrap them with context and match with errors.Is.
 */
var (
	ErrInvalidByteValue        = errors.New("invalid byte value")
	ErrInvalidBitString        = errors.New("invalid bit string")
	ErrMessageTooLarge         = errors.New("message too large")
	ErrImageTooSmall           = errors.New("image too small")
	ErrTruncatedStream         = errors.New("truncated stream")
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")
	ErrIO                      = errors.New("i/o error")
)
