package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestSupportedType(t *testing.T) {
	p := NewProcessor()
	for _, ct := range []string{"image/jpeg", "image/jpg"} {
		if !p.SupportedType(ct) {
			t.Errorf("SupportedType(%s) = false", ct)
		}
	}
	for _, ct := range []string{"image/png", "image/heic", "text/plain", ""} {
		if p.SupportedType(ct) {
			t.Errorf("SupportedType(%s) = true", ct)
		}
	}
}

func TestProcessScalesDownLargeImages(t *testing.T) {
	p := NewProcessor()

	res, err := p.Process(encodeJPEG(t, 1920, 1080))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	w, h := decodeDims(t, res.Display)
	if w > DisplayMaxDim || h > DisplayMaxDim {
		t.Errorf("display = %dx%d, want longest side <= %d", w, h, DisplayMaxDim)
	}
	// Aspect ratio is preserved: 1920x1080 scales to 1280x720.
	if w != 1280 || h != 720 {
		t.Errorf("display = %dx%d, want 1280x720", w, h)
	}

	w, h = decodeDims(t, res.Thumb)
	if w > ThumbMaxDim || h > ThumbMaxDim {
		t.Errorf("thumb = %dx%d, want longest side <= %d", w, h, ThumbMaxDim)
	}
}

func TestProcessKeepsSmallImages(t *testing.T) {
	p := NewProcessor()

	res, err := p.Process(encodeJPEG(t, 200, 150))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	w, h := decodeDims(t, res.Display)
	if w != 200 || h != 150 {
		t.Errorf("display = %dx%d, want original 200x150", w, h)
	}
}

func TestProcessRejectsGarbage(t *testing.T) {
	p := NewProcessor()
	if _, err := p.Process([]byte("not an image")); err == nil {
		t.Error("expected decode error")
	}
}

func TestProcessWithoutExif(t *testing.T) {
	p := NewProcessor()

	res, err := p.Process(encodeJPEG(t, 100, 100))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	// Plain encoder output carries no EXIF; capture time stays unknown.
	if res.CaptureTime != nil {
		t.Errorf("capture time = %v, want nil", res.CaptureTime)
	}
	if len(res.Exif) != 0 {
		t.Errorf("exif = %v, want empty", res.Exif)
	}
}
