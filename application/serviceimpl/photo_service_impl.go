package serviceimpl

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/dto"
	"cattle-tracker/domain/models"
	"cattle-tracker/domain/repositories"
	"cattle-tracker/domain/services"
	"cattle-tracker/infrastructure/imaging"
	"cattle-tracker/infrastructure/storage"
	"cattle-tracker/pkg/logger"
)

const (
	displayFileName = "display_1280.jpg"
	thumbFileName   = "thumb_300.jpg"
)

type PhotoServiceImpl struct {
	photoRepo  repositories.PhotoRepository
	cattleRepo repositories.CattleRepository
	processor  *imaging.Processor
	media      storage.MediaStore
	maxBytes   int64
	now        func() time.Time
}

func NewPhotoService(
	photoRepo repositories.PhotoRepository,
	cattleRepo repositories.CattleRepository,
	processor *imaging.Processor,
	media storage.MediaStore,
	maxUploadSizeMB int,
) services.PhotoService {
	return &PhotoServiceImpl{
		photoRepo:  photoRepo,
		cattleRepo: cattleRepo,
		processor:  processor,
		media:      media,
		maxBytes:   int64(maxUploadSizeMB) * 1024 * 1024,
		now:        time.Now,
	}
}

func (s *PhotoServiceImpl) Upload(ctx context.Context, userID uuid.UUID, upload *dto.PhotoUpload, baseURL string) (*dto.PhotoUploadResponse, error) {
	if upload.Size > s.maxBytes {
		return nil, models.NewValidationError("image", fmt.Sprintf("file exceeds the %d MB limit", s.maxBytes/(1024*1024)))
	}
	if !s.processor.SupportedType(upload.ContentType) {
		return nil, models.NewValidationError("image", "unsupported image type; JPEG required")
	}

	result, err := s.processor.Process(upload.Data)
	if err != nil {
		return nil, models.NewValidationError("image", "file is not a valid image")
	}

	uploadedAt := s.now()
	dir, err := s.media.NewPhotoDir(uploadedAt)
	if err != nil {
		return nil, err
	}

	originalPath, err := s.media.Save(dir, "original_"+upload.FileName, upload.Data)
	if err != nil {
		return nil, err
	}
	if _, err := s.media.Save(dir, displayFileName, result.Display); err != nil {
		return nil, err
	}
	if _, err := s.media.Save(dir, thumbFileName, result.Thumb); err != nil {
		return nil, err
	}

	captureTime := result.CaptureTime
	if captureTime == nil {
		captureTime = &uploadedAt
	}

	photo := &models.Photo{
		FilePath:     originalPath,
		CaptureTime:  captureTime,
		Exif:         result.Exif,
		UploadedAt:   uploadedAt,
		UploadedByID: userID,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		logger.PhotoError("upload", "failed to persist photo record", err, map[string]interface{}{"file": upload.FileName})
		// Best effort: do not leave orphaned files behind.
		_ = s.media.RemoveDir(dir)
		return nil, err
	}
	logger.Photo("upload", "photo uploaded", map[string]interface{}{
		"id":   photo.ID.String(),
		"path": originalPath,
		"size": upload.Size,
	})

	resp := dto.PhotoToResponse(photo, baseURL)
	return &dto.PhotoUploadResponse{
		ID:          photo.ID,
		CaptureTime: photo.CaptureTime,
		ThumbURL:    resp.ThumbURL,
	}, nil
}

func (s *PhotoServiceImpl) List(ctx context.Context, filter dto.PhotoListFilter, page, pageSize int, baseURL string) ([]dto.PhotoResponse, int64, error) {
	repoFilter := repositories.PhotoFilter{
		CaptureDate:    filter.CaptureDate,
		CaptureDateGte: filter.CaptureDateGte,
		CaptureDateLte: filter.CaptureDateLte,
		HasCattle:      filter.HasCattle,
	}

	offset := (page - 1) * pageSize
	photos, total, err := s.photoRepo.List(ctx, repoFilter, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.PhotoResponse, 0, len(photos))
	for i := range photos {
		responses = append(responses, *dto.PhotoToResponse(&photos[i], baseURL))
	}
	return responses, total, nil
}

func (s *PhotoServiceImpl) Get(ctx context.Context, id uuid.UUID, baseURL string) (*dto.PhotoResponse, error) {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.PhotoToResponse(photo, baseURL), nil
}

func (s *PhotoServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.photoRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.media.RemoveDir(path.Dir(photo.FilePath)); err != nil {
		// Record is gone; the orphaned directory is only a warning.
		logger.PhotoError("delete", "failed to remove photo files", err, map[string]interface{}{"id": id.String()})
	}
	logger.Photo("delete", "photo deleted", map[string]interface{}{"id": id.String()})
	return nil
}

func (s *PhotoServiceImpl) ReplaceTags(ctx context.Context, photoID uuid.UUID, cattleIDs []uuid.UUID, baseURL string) (*dto.PhotoResponse, error) {
	if _, err := s.photoRepo.GetByID(ctx, photoID); err != nil {
		return nil, err
	}

	unique := dedupIDs(cattleIDs)
	if len(unique) > 0 {
		active, err := s.cattleRepo.FilterActiveIDs(ctx, unique)
		if err != nil {
			return nil, err
		}
		for _, id := range unique {
			if !active[id] {
				return nil, models.NewValidationError("cattle_ids", fmt.Sprintf("%s is not an existing active animal", id))
			}
		}
	}

	if err := s.photoRepo.ReplaceTags(ctx, photoID, unique); err != nil {
		return nil, err
	}
	logger.Photo("tag", "photo tags replaced", map[string]interface{}{
		"id":   photoID.String(),
		"tags": len(unique),
	})

	return s.Get(ctx, photoID, baseURL)
}

// dedupIDs removes duplicates preserving first-seen order.
func dedupIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}
