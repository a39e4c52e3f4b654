// Package imageprocessor уменьшает фотографии галереи компании перед загрузкой.
package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

const (
	DefaultMaxSide = 1600
	DefaultQuality = 85
)

// Processor вписывает jpeg и png в квадрат maxSide x maxSide с сохранением пропорций.
// webp только проверяется: энкодера для него нет, файл уходит как есть.
type Processor struct {
	maxSide int
	quality int // JPEG quality (1-100)
}

func NewProcessor(maxSide, quality int) *Processor {
	if maxSide <= 0 {
		maxSide = DefaultMaxSide
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Processor{maxSide: maxSide, quality: quality}
}

// Fit возвращает тело файла для загрузки. Картинка не больше лимита не перекодируется.
func (p *Processor) Fit(r io.Reader, contentType string) (io.Reader, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	switch contentType {
	case "image/jpeg", "image/png":
	case "image/webp":
		if _, err := webp.DecodeConfig(bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("failed to decode webp: %w", err)
		}
		return bytes.NewReader(raw), nil
	default:
		return bytes.NewReader(raw), nil
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := fitted(bounds.Dx(), bounds.Dy(), p.maxSide)
	if w == bounds.Dx() && h == bounds.Dy() {
		return bytes.NewReader(raw), nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.quality})
	case "png":
		err = png.Encode(&buf, dst)
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return &buf, nil
}

func fitted(width, height, maxSide int) (int, int) {
	if width <= maxSide && height <= maxSide {
		return width, height
	}
	if width >= height {
		return maxSide, max(1, height*maxSide/width)
	}
	return max(1, width*maxSide/height), maxSide
}
