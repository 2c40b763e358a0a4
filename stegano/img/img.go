package img
import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	// decoders for every accepted input format
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/RomaZinkevich/Hide-n-C/stegano/util"
)

// IOError reports a failed file operation. It matches util.ErrIO.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("Failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == util.ErrIO
}

// DetectFormat sniffs the magic bytes of an image file.
func DetectFormat(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("GIF8")):
		return "gif"
	case bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}):
		return "png"
	case bytes.HasPrefix(data, []byte{0xff, 0xd8, 0xff}):
		return "jpeg"
	case bytes.HasPrefix(data, []byte("BM")):
		return "bmp"
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return "tiff"
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "webp"
	}
	return ""
}

// ChannelCount returns how many channels a decoder would report for m:
// 1 for gray, 3 for opaque colour and 4 when an alpha or K channel exists.
func ChannelCount(m image.Image) int {
	switch m.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.NRGBA, *image.NRGBA64, *image.CMYK, *image.NYCbCrA:
		return 4
	case *image.YCbCr:
		return 3
	}
	if o, ok := m.(interface{ Opaque() bool }); ok && !o.Opaque() {
		return 4
	}
	return 3
}

// FromImage flattens m into an RGB buffer.
func FromImage(m image.Image) (*PixelBuffer, error) {
	bounds := m.Bounds()
	buf, err := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	if rgba, ok := m.(*image.RGBA); ok {
		for y := 0; y < buf.Height; y++ {
			row := rgba.Pix[y*rgba.Stride:]
			for x := 0; x < buf.Width; x++ {
				copy(buf.Pix[(y*buf.Width+x)*Channels:], row[x*4:x*4+Channels])
			}
		}
		return buf, nil
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := m.At(x, y).RGBA()
			buf.Pix[i] = uint8(r >> 8)
			buf.Pix[i+1] = uint8(g >> 8)
			buf.Pix[i+2] = uint8(b >> 8)
			i += Channels
		}
	}
	return buf, nil
}

// ToImage returns an opaque RGBA copy of the buffer.
func (b *PixelBuffer) ToImage() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, j := 0, 0; i < len(b.Pix); i, j = i+Channels, j+4 {
		m.Pix[j] = b.Pix[i]
		m.Pix[j+1] = b.Pix[i+1]
		m.Pix[j+2] = b.Pix[i+2]
		m.Pix[j+3] = 0xff
	}
	return m
}

// Decode reads any registered image format and rejects anything that is not
// plain 3-channel RGB.
func Decode(r io.Reader) (*PixelBuffer, error) {
	m, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to decode image")
	}
	if n := ChannelCount(m); n != Channels {
		return nil, errors.Wrapf(util.ErrUnsupportedChannelCount,
			"%s image has %d channels, expected %d", format, n, Channels)
	}
	return FromImage(m)
}

// Load reads and decodes the image stored at path.
func Load(path string) (*PixelBuffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{"read", path, err}
	}
	if DetectFormat(data) == "" {
		return nil, errors.Errorf("Unsupported image format: %s", path)
	}
	buf, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return buf, nil
}
