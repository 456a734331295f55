// bmp.go - Pure Go 24-bit uncompressed bitmap writer.
// Manually constructs BMP file headers (BITMAPFILEHEADER + BITMAPINFOHEADER) and
// handles BGR, bottom-up pixel ordering as required by the BMP specification.
package generator

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"
)

const bmpHeaderSize = 54

// writeBMP encodes img to a BMP file at the given path.
func writeBMP(output string, img image.Image) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := encodeBMP(f, img); err != nil {
		return fmt.Errorf("encode BMP: %w", err)
	}
	return f.Close()
}

// encodeBMP writes img as a 24-bit bitmap. Alpha is dropped.
func encodeBMP(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	rowSize := ((width*3 + 3) / 4) * 4 // Row size padded to 4 bytes
	pixelDataSize := rowSize * height
	fileSize := bmpHeaderSize + pixelDataSize

	// BMP File Header (14 bytes)
	fileHeader := make([]byte, 14)
	fileHeader[0] = 'B'
	fileHeader[1] = 'M'
	binary.LittleEndian.PutUint32(fileHeader[2:6], uint32(fileSize))
	binary.LittleEndian.PutUint32(fileHeader[10:14], bmpHeaderSize) // Pixel data offset

	// DIB Header (40 bytes) - BITMAPINFOHEADER
	dibHeader := make([]byte, 40)
	binary.LittleEndian.PutUint32(dibHeader[0:4], 40)              // Header size
	binary.LittleEndian.PutUint32(dibHeader[4:8], uint32(width))   // Width
	binary.LittleEndian.PutUint32(dibHeader[8:12], uint32(height)) // Height
	binary.LittleEndian.PutUint16(dibHeader[12:14], 1)             // Color planes
	binary.LittleEndian.PutUint16(dibHeader[14:16], 24)            // Bits per pixel
	binary.LittleEndian.PutUint32(dibHeader[20:24], uint32(pixelDataSize))

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(fileHeader); err != nil {
		return err
	}
	if _, err := bw.Write(dibHeader); err != nil {
		return err
	}

	// Pixel data (BGR format, bottom-up)
	row := make([]byte, rowSize)
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := 0; x < width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, y).RGBA()
			row[x*3] = uint8(bl >> 8)
			row[x*3+1] = uint8(g >> 8)
			row[x*3+2] = uint8(r >> 8)
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}
