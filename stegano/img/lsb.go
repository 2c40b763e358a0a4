package img
import (
	"fmt"

	"github.com/RomaZinkevich/Hide-n-C/stegano/util"
)

/*
 * 3-bit LSB embedding. Every colour channel carries one segment; channels are
 * visited with a single flat index (row-major, R, G, B per pixel), so the
 * scan can stop on any channel and the header needs no special casing.
 */
const (
	Channels = 3
	lowBits  = 1<<util.SegmentSize - 1

	// longest message the header can describe
	MaxMessageLength = util.MaxMessageLength
)

// PixelBuffer is a tightly packed RGB image, top row first.
type PixelBuffer struct {
	Pix    []byte
	Width  int
	Height int
}

func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("Invalid image dimensions %dx%d", width, height)
	}
	return &PixelBuffer{
		Pix:    make([]byte, width*height*Channels),
		Width:  width,
		Height: height,
	}, nil
}

// Slots returns the number of channels available for segments.
func (b *PixelBuffer) Slots() int {
	return len(b.Pix)
}

func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &PixelBuffer{pix, b.Width, b.Height}
}

// RequiredSlots is the number of channels Hide demands for a message of
// the given length: the header plus a whole pixel for every body segment.
func RequiredSlots(messageLength int) int {
	return util.HeaderSegments + util.SegmentsPerCode*Channels*messageLength
}

// Capacity returns the longest message Hide accepts for a width x height image.
func Capacity(width, height int) int {
	slots := width * height * Channels
	if slots < util.HeaderSegments {
		return 0
	}
	n := (slots - util.HeaderSegments) / (util.SegmentsPerCode * Channels)
	if n > util.MaxMessageLength {
		n = util.MaxMessageLength
	}
	return n
}

// Embed overwrites the low 3 bits of the first len(stream) channels.
// Nothing is written when the stream does not fit.
func Embed(buf *PixelBuffer, stream util.Stream) error {
	if len(stream) > buf.Slots() {
		return fmt.Errorf("%w: %d segments, %d channels available",
			util.ErrImageTooSmall, len(stream), buf.Slots())
	}
	for i, seg := range stream {
		buf.Pix[i] = buf.Pix[i]&^lowBits | seg.Value()
	}
	return nil
}

// Extract reads the header from the first pixel and then as many segments as
// it announces.
func Extract(buf *PixelBuffer) ([]byte, error) {
	if buf.Slots() < util.HeaderSegments {
		return nil, fmt.Errorf("%w: no room for a header", util.ErrImageTooSmall)
	}
	var header [util.HeaderSegments]util.Segment
	for i := range header {
		header[i] = util.SegmentOf(buf.Pix[i])
	}
	count := util.DecodeHeader(header)

	body := buf.Pix[util.HeaderSegments:]
	if len(body) < count {
		return nil, fmt.Errorf("%w: header announces %d segments, image holds %d",
			util.ErrTruncatedStream, count, len(body))
	}
	segments := make([]util.Segment, count)
	for i := range segments {
		segments[i] = util.SegmentOf(body[i])
	}
	return util.DecodeBody(segments, count)
}

// Hide frames message and embeds it into buf. buf is left untouched on error.
func Hide(buf *PixelBuffer, message []byte) error {
	if need := RequiredSlots(len(message)); need > buf.Slots() {
		return fmt.Errorf("%w: %d bytes need %d channels, image has %d (capacity %d bytes)",
			util.ErrMessageTooLarge, len(message), need, buf.Slots(), Capacity(buf.Width, buf.Height))
	}
	stream, err := util.Encode(message)
	if err != nil {
		return err
	}
	return Embed(buf, stream)
}

// Reveal recovers a message written by Hide.
func Reveal(buf *PixelBuffer) ([]byte, error) {
	return Extract(buf)
}
