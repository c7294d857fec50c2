package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"io"
	"os"

	"github.com/klauspost/compress/zlib"
)

var pngSignature = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

// PNG has no zero sized images.
var errEmptyImage = errors.New("png: image has no pixels")

// writeChunk writes length, type, data and the crc-32 of type and data.
func writeChunk(w io.Writer, chunkType string, data []byte) error {
	header := make([]byte, 8)
	binary.BigEndian.PutUint32(header[0:4], uint32(len(data)))
	copy(header[4:8], chunkType)

	hash := make([]byte, 4)
	binary.BigEndian.PutUint32(hash, crc32.Update(crc32.ChecksumIEEE(header[4:8]), crc32.IEEETable, data))

	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := w.Write(hash)
	return err
}

func writeIHDR(w io.Writer, width int, height int) error {
	bitDepth := byte(0x8)          // bits per sample
	colorType := byte(0x6)         // truecolor with alpha, frames are composited RGBA
	compressionMethod := byte(0x0) // always 0
	filterMethod := byte(0x0)      // always 0
	interlaceMethod := byte(0x0)   // 0 or 1

	chunkData := make([]byte, 13)

	binary.BigEndian.PutUint32(chunkData[0:4], uint32(width))
	binary.BigEndian.PutUint32(chunkData[4:8], uint32(height))
	chunkData[8] = bitDepth
	chunkData[9] = colorType
	chunkData[10] = compressionMethod
	chunkData[11] = filterMethod
	chunkData[12] = interlaceMethod

	return writeChunk(w, "IHDR", chunkData)
}

// serialize prefixes every scanline with filter type 0 (None).
func serialize(pix []byte, stride int, height int) []byte {
	b := make([]byte, 0, (stride+1)*height)
	for i := 0; i < height; i++ {
		b = append(b, 0)
		b = append(b, pix[stride*i:stride*(i+1)]...)
	}
	return b
}

func writeIDAT(w io.Writer, img *image.NRGBA) error {
	var buf bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	if _, err := writer.Write(serialize(img.Pix, img.Stride, bounds.Dy())); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	return writeChunk(w, "IDAT", buf.Bytes())
}

func encodePNG(w io.Writer, img *image.NRGBA) error {
	bounds := img.Bounds()
	if bounds.Empty() {
		return errEmptyImage
	}
	if _, err := w.Write(pngSignature); err != nil {
		return err
	}
	if err := writeIHDR(w, bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	if err := writeIDAT(w, img); err != nil {
		return err
	}
	return writeChunk(w, "IEND", nil)
}

func WriteToPNG(img *image.NRGBA, fileName string) error {
	if img.Bounds().Empty() {
		return errEmptyImage
	}
	pngFile, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(0644))
	if err != nil {
		return err
	}

	if err := encodePNG(pngFile, img); err != nil {
		pngFile.Close()
		return err
	}
	return pngFile.Close()
}
