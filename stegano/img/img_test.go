package img
import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomaZinkevich/Hide-n-C/stegano/util"
)

func encodePNG(t *testing.T, m image.Image) []byte {
	t.Helper()
	out := new(bytes.Buffer)
	require.NoError(t, png.Encode(out, m))
	return out.Bytes()
}

func TestDetectFormat(t *testing.T) {
	tests := map[string][]byte{
		"gif":  []byte("GIF89a......"),
		"png":  {0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0},
		"jpeg": {0xff, 0xd8, 0xff, 0xe0},
		"bmp":  []byte("BM\x00\x00"),
		"tiff": []byte("II*\x00...."),
		"webp": []byte("RIFF\x00\x00\x00\x00WEBPVP8 "),
		"":     []byte("hello"),
	}
	for want, data := range tests {
		assert.Equal(t, want, DetectFormat(data))
	}
	assert.Equal(t, "", DetectFormat(nil))
}

func TestChannelCount(t *testing.T) {
	rect := image.Rect(0, 0, 2, 2)
	opaque := image.NewRGBA(rect)
	for i := range opaque.Pix {
		opaque.Pix[i] = 0xff
	}
	tests := []struct {
		m    image.Image
		want int
	}{
		{opaque, 3},
		{image.NewRGBA(rect), 4},
		{image.NewNRGBA(rect), 4},
		{image.NewGray(rect), 1},
		{image.NewGray16(rect), 1},
		{image.NewCMYK(rect), 4},
		{image.NewYCbCr(rect, image.YCbCrSubsampleRatio420), 3},
		{image.NewPaletted(rect, color.Palette{color.Black, color.White}), 3},
	}
	for i, test := range tests {
		assert.Equal(t, test.want, ChannelCount(test.m), "case %d", i)
	}
}

func TestDecodePNG(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range m.Pix {
		m.Pix[i] = uint8(i * 7)
		if i%4 == 3 {
			m.Pix[i] = 0xff
		}
	}
	buf, err := Decode(bytes.NewReader(encodePNG(t, m)))
	require.NoError(t, err)
	assert.Equal(t, 3, buf.Width)
	assert.Equal(t, 2, buf.Height)
	assert.Equal(t, []byte{0, 7, 14, 28, 35, 42}, buf.Pix[:6])
	assert.Equal(t, m.Pix, buf.ToImage().Pix)
}

func TestDecodeRejectsChannels(t *testing.T) {
	rect := image.Rect(0, 0, 4, 4)
	alpha := image.NewNRGBA(rect)
	alpha.Pix[3] = 0x80
	tests := []image.Image{
		alpha,
		image.NewGray(rect),
	}
	for _, m := range tests {
		_, err := Decode(bytes.NewReader(encodePNG(t, m)))
		assert.True(t, errors.Is(err, util.ErrUnsupportedChannelCount), "%v", err)
	}
}

func TestDecodeJPEG(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	out := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(out, m, nil))

	buf, err := Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 8, buf.Width)
	assert.Equal(t, 8, buf.Height)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.True(t, errors.Is(err, util.ErrIO), "%v", err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
}

func TestLoadUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.bmp")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadPipeline(t *testing.T) {
	dir := t.TempDir()
	src := randomBuffer(t, 20, 15, 99)
	msg := []byte("Hello World")

	tests := []struct {
		name   string
		mode   string
		format string
	}{
		{"out.bmp", OutputBMP, "bmp"},
		{"out.png", OutputBMP, "bmp"},
		{"out.jpg", OutputBMP, "bmp"},
		{"out.png", OutputAuto, "png"},
		{"out.BMP", OutputAuto, "bmp"},
	}
	for _, test := range tests {
		buf := src.Clone()
		require.NoError(t, Hide(buf, msg))

		path := filepath.Join(dir, test.name)
		require.NoError(t, Save(path, buf, test.mode))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, test.format, DetectFormat(data), "%s/%s", test.mode, test.name)

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, buf.Pix, loaded.Pix)

		got, err := Reveal(loaded)
		require.NoError(t, err)
		assert.Equal(t, msg, got)
	}
}

func TestSaveBadPath(t *testing.T) {
	buf := randomBuffer(t, 2, 2, 1)
	err := Save(filepath.Join(t.TempDir(), "no", "such", "dir.bmp"), buf, OutputBMP)
	assert.True(t, errors.Is(err, util.ErrIO), "%v", err)
}
