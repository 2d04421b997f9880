package images

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Uploaded illustrations are bounded to this box, aspect ratio preserved.
const (
	MaxWidth  = 800
	MaxHeight = 800
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// FitWithin downscales src so it fits inside maxW x maxH while preserving
// aspect ratio. Images already inside the box are returned unchanged; this
// never upscales.
func FitWithin(src image.Image, maxW, maxH int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxW && h <= maxH {
		return src
	}

	ratioW := float64(maxW) / float64(w)
	ratioH := float64(maxH) / float64(h)
	ratio := ratioW
	if ratioH < ratio {
		ratio = ratioH
	}

	dstW := int(float64(w) * ratio)
	dstH := int(float64(h) * ratio)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

// Process decodes an uploaded JPEG or PNG, bounds it to MaxWidth x MaxHeight
// and re-encodes it. It returns the processed bytes and the file extension
// to store it under.
func Process(r io.Reader) ([]byte, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", ErrUnsupportedFormat
	}

	fitted := FitWithin(src, MaxWidth, MaxHeight)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, fitted, &jpeg.Options{Quality: 85}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".jpg", nil
	case "png":
		if err := png.Encode(&buf, fitted); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".png", nil
	default:
		return nil, "", ErrUnsupportedFormat
	}
}
