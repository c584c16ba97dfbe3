package serviceimpl

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/dto"
	"cattle-tracker/domain/models"
	"cattle-tracker/infrastructure/imaging"
	"cattle-tracker/infrastructure/memory"
)

func newPhotoService(t *testing.T) (*PhotoServiceImpl, *memory.CattleRepository, *memory.PhotoRepository, *memory.MediaStore) {
	t.Helper()
	cattleRepo := memory.NewCattleRepository()
	userRepo := memory.NewUserRepository()
	photoRepo := memory.NewPhotoRepository(cattleRepo, userRepo)
	media := memory.NewMediaStore()
	svc := &PhotoServiceImpl{
		photoRepo:  photoRepo,
		cattleRepo: cattleRepo,
		processor:  imaging.NewProcessor(),
		media:      media,
		maxBytes:   10 * 1024 * 1024,
		now:        func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) },
	}
	return svc, cattleRepo, photoRepo, media
}

func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode test jpeg: %v", err)
	}
	return buf.Bytes()
}

func jpegUpload(t *testing.T, name string, width, height int) *dto.PhotoUpload {
	t.Helper()
	data := testJPEG(t, width, height)
	return &dto.PhotoUpload{
		FileName:    name,
		ContentType: "image/jpeg",
		Size:        int64(len(data)),
		Data:        data,
	}
}

func TestPhotoUploadWritesDerivatives(t *testing.T) {
	svc, _, photoRepo, media := newPhotoService(t)
	ctx := context.Background()

	resp, err := svc.Upload(ctx, uuid.New(), jpegUpload(t, "barn.jpg", 1600, 900), "http://localhost:3000")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	// Original plus two derivatives.
	if media.Len() != 3 {
		t.Errorf("stored files = %d, want 3", media.Len())
	}

	photo, err := photoRepo.GetByID(ctx, resp.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if photo.CaptureTime == nil {
		t.Error("capture time not set")
	}

	display, ok := media.Get(derivativePath(photo.FilePath, displayFileName))
	if !ok {
		t.Fatal("display derivative missing")
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(display))
	if err != nil {
		t.Fatalf("decode display: %v", err)
	}
	if cfg.Width > 1280 || cfg.Height > 1280 {
		t.Errorf("display = %dx%d, want longest side <= 1280", cfg.Width, cfg.Height)
	}

	thumb, ok := media.Get(derivativePath(photo.FilePath, thumbFileName))
	if !ok {
		t.Fatal("thumbnail missing")
	}
	cfg, _, err = image.DecodeConfig(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decode thumb: %v", err)
	}
	if cfg.Width > 300 || cfg.Height > 300 {
		t.Errorf("thumb = %dx%d, want longest side <= 300", cfg.Width, cfg.Height)
	}
}

func TestPhotoUploadRejectsOversize(t *testing.T) {
	svc, _, _, _ := newPhotoService(t)
	svc.maxBytes = 1024

	upload := jpegUpload(t, "big.jpg", 400, 400)
	_, err := svc.Upload(context.Background(), uuid.New(), upload, "http://localhost:3000")
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPhotoUploadRejectsUnsupportedType(t *testing.T) {
	svc, _, _, _ := newPhotoService(t)

	upload := &dto.PhotoUpload{
		FileName:    "notes.txt",
		ContentType: "text/plain",
		Size:        10,
		Data:        []byte("not image"),
	}
	_, err := svc.Upload(context.Background(), uuid.New(), upload, "http://localhost:3000")
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPhotoReplaceTags(t *testing.T) {
	svc, cattleRepo, _, _ := newPhotoService(t)
	ctx := context.Background()
	base := "http://localhost:3000"

	a := seedCattle(t, cattleRepo, "T001", models.SexCow, nil, nil, nil)
	b := seedCattle(t, cattleRepo, "T002", models.SexBull, nil, nil, nil)

	uploaded, err := svc.Upload(ctx, uuid.New(), jpegUpload(t, "herd.jpg", 640, 480), base)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	// Duplicates collapse to a single tag per animal.
	photo, err := svc.ReplaceTags(ctx, uploaded.ID, []uuid.UUID{a.ID, b.ID, a.ID}, base)
	if err != nil {
		t.Fatalf("ReplaceTags: %v", err)
	}
	if len(photo.TaggedCattle) != 2 {
		t.Errorf("tags = %d, want 2", len(photo.TaggedCattle))
	}

	// Replacement is wholesale, not additive.
	photo, err = svc.ReplaceTags(ctx, uploaded.ID, []uuid.UUID{b.ID}, base)
	if err != nil {
		t.Fatalf("ReplaceTags: %v", err)
	}
	if len(photo.TaggedCattle) != 1 || photo.TaggedCattle[0].TagNumber != "T002" {
		t.Errorf("tags after replace = %+v", photo.TaggedCattle)
	}

	// Empty set clears all tags.
	photo, err = svc.ReplaceTags(ctx, uploaded.ID, nil, base)
	if err != nil {
		t.Fatalf("ReplaceTags(empty): %v", err)
	}
	if len(photo.TaggedCattle) != 0 {
		t.Errorf("tags after clear = %+v", photo.TaggedCattle)
	}
}

func TestPhotoReplaceTagsRejectsInactive(t *testing.T) {
	svc, cattleRepo, _, _ := newPhotoService(t)
	ctx := context.Background()
	base := "http://localhost:3000"

	archived := seedCattle(t, cattleRepo, "T001", models.SexCow, nil, nil, nil)
	archived.Status = models.StatusArchived
	if err := cattleRepo.Update(ctx, archived); err != nil {
		t.Fatalf("archive seed: %v", err)
	}

	uploaded, err := svc.Upload(ctx, uuid.New(), jpegUpload(t, "herd.jpg", 640, 480), base)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	var verr *models.ValidationError
	if _, err := svc.ReplaceTags(ctx, uploaded.ID, []uuid.UUID{archived.ID}, base); !errors.As(err, &verr) {
		t.Errorf("archived animal: expected validation error, got %v", err)
	}
	if _, err := svc.ReplaceTags(ctx, uploaded.ID, []uuid.UUID{uuid.New()}, base); !errors.As(err, &verr) {
		t.Errorf("unknown animal: expected validation error, got %v", err)
	}
}

func TestPhotoDeleteRemovesFiles(t *testing.T) {
	svc, _, photoRepo, media := newPhotoService(t)
	ctx := context.Background()

	uploaded, err := svc.Upload(ctx, uuid.New(), jpegUpload(t, "herd.jpg", 640, 480), "http://localhost:3000")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if err := svc.Delete(ctx, uploaded.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := photoRepo.GetByID(ctx, uploaded.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("record still present: %v", err)
	}
	if media.Len() != 0 {
		t.Errorf("files remaining = %d, want 0", media.Len())
	}
}

func derivativePath(originalPath, name string) string {
	i := len(originalPath) - 1
	for i >= 0 && originalPath[i] != '/' {
		i--
	}
	return originalPath[:i+1] + name
}
