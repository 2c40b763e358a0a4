package img
import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	bmpSignature   = 0x4d42 // "BM"
	bitsPerPixel   = 24
	pelsPerMeter   = 2835 // ~72 DPI
)

type bmpFileHeader struct {
	Type      uint16
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32
}

type bmpInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// RowSize is the on-disk length of one 24-bit row, padded to 4 bytes.
func RowSize(width int) int {
	return (Channels*width + 3) &^ 3
}

// EncodeBMP writes buf as an uncompressed bottom-up 24-bit BMP.
func EncodeBMP(w io.Writer, buf *PixelBuffer) error {
	rowSize := RowSize(buf.Width)
	pixelArraySize := rowSize * buf.Height
	if len(buf.Pix) < buf.Width*buf.Height*Channels {
		return fmt.Errorf("Pixel buffer holds %d bytes, %dx%d needs %d",
			len(buf.Pix), buf.Width, buf.Height, buf.Width*buf.Height*Channels)
	}

	fh := bmpFileHeader{
		Type:    bmpSignature,
		Size:    uint32(fileHeaderSize + infoHeaderSize + pixelArraySize),
		OffBits: fileHeaderSize + infoHeaderSize,
	}
	ih := bmpInfoHeader{
		Size:          infoHeaderSize,
		Width:         int32(buf.Width),
		Height:        int32(buf.Height),
		Planes:        1,
		BitCount:      bitsPerPixel,
		SizeImage:     uint32(pixelArraySize),
		XPelsPerMeter: pelsPerMeter,
		YPelsPerMeter: pelsPerMeter,
	}
	if err := binary.Write(w, binary.LittleEndian, &fh); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, &ih); err != nil {
		return err
	}

	// padding bytes stay zero, the row is rewritten pixel by pixel
	row := make([]byte, rowSize)
	for y := buf.Height - 1; y >= 0; y-- {
		src := buf.Pix[y*buf.Width*Channels:]
		for x := 0; x < buf.Width; x++ {
			row[x*3] = src[x*3+2]
			row[x*3+1] = src[x*3+1]
			row[x*3+2] = src[x*3]
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
