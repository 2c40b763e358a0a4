package img
import (
	"bufio"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// always write BMP bytes, whatever the destination extension says
	OutputBMP = "bmp"
	// pick the writer from the destination extension
	OutputAuto = "auto"
)

// EncodePNG writes buf as a lossless PNG.
func EncodePNG(w io.Writer, buf *PixelBuffer) error {
	return png.Encode(w, buf.ToImage())
}

// OutputFormat returns the format Save uses for path.
func OutputFormat(path, mode string) string {
	if mode == OutputAuto && strings.EqualFold(filepath.Ext(path), ".png") {
		return "png"
	}
	return "bmp"
}

// Save writes buf to path according to mode (OutputBMP or OutputAuto).
func Save(path string, buf *PixelBuffer, mode string) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{"create", path, err}
	}
	w := bufio.NewWriter(f)
	if OutputFormat(path, mode) == "png" {
		err = EncodePNG(w, buf)
	} else {
		err = EncodeBMP(w, buf)
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &IOError{"write", path, err}
	}
	return nil
}
