package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"strings"
	"time"

	"github.com/nfnt/resize"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

const (
	DisplayMaxDim = 1280
	ThumbMaxDim   = 300

	displayQuality = 90
	thumbQuality   = 85
)

// Result holds the decoded metadata and the two derivative encodings for one
// uploaded image.
type Result struct {
	Exif        map[string]string
	CaptureTime *time.Time // nil when the image carries no usable timestamp
	Display     []byte     // JPEG, longest side <= 1280
	Thumb       []byte     // JPEG, longest side <= 300
}

type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// SupportedType reports whether the processor can decode the given content
// type. HEIC support needs a codec and is not wired yet.
func (p *Processor) SupportedType(contentType string) bool {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/jpg":
		return true
	default:
		return false
	}
}

// Process decodes the image, extracts EXIF metadata and renders the display
// and thumbnail derivatives.
func (p *Processor) Process(data []byte) (*Result, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	result := &Result{Exif: map[string]string{}}

	// EXIF is best-effort: many images carry none.
	if x, err := exif.Decode(bytes.NewReader(data)); err == nil {
		result.Exif = flattenExif(x)
		if ts, err := x.DateTime(); err == nil {
			result.CaptureTime = &ts
		}
	}

	display, err := encodeResized(img, DisplayMaxDim, displayQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to render display image: %w", err)
	}
	thumb, err := encodeResized(img, ThumbMaxDim, thumbQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to render thumbnail: %w", err)
	}

	result.Display = display
	result.Thumb = thumb
	return result, nil
}

// encodeResized shrinks the image to fit maxDim on its longest side (never
// upscaling) and encodes it as JPEG.
func encodeResized(img image.Image, maxDim uint, quality int) ([]byte, error) {
	resized := resize.Thumbnail(maxDim, maxDim, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type exifWalker struct {
	fields map[string]string
}

func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	value := strings.Trim(tag.String(), `"`)
	if value != "" {
		w.fields[string(name)] = value
	}
	return nil
}

func flattenExif(x *exif.Exif) map[string]string {
	walker := &exifWalker{fields: map[string]string{}}
	_ = x.Walk(walker)
	return walker.fields
}
