package dto

import (
	"time"

	"github.com/google/uuid"
)

// PhotoUpload carries a multipart image into the photo service.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

type TaggedCattle struct {
	ID        uuid.UUID `json:"id"`
	TagNumber string    `json:"tag_number"`
	Name      string    `json:"name"`
}

type PhotoResponse struct {
	ID                 uuid.UUID         `json:"id"`
	OriginalURL        string            `json:"original_url"`
	DisplayURL         string            `json:"display_url"`
	ThumbURL           string            `json:"thumb_url"`
	CaptureTime        *time.Time        `json:"capture_time"`
	Exif               map[string]string `json:"exif"`
	UploadedAt         time.Time         `json:"uploaded_at"`
	UploadedBy         uuid.UUID         `json:"uploaded_by"`
	UploadedByUsername string            `json:"uploaded_by_username"`
	TaggedCattle       []TaggedCattle    `json:"tagged_cattle"`
}

type PhotoUploadResponse struct {
	ID          uuid.UUID  `json:"id"`
	CaptureTime *time.Time `json:"capture_time"`
	ThumbURL    string     `json:"thumb_url"`
}

// PhotoTagRequest replaces a photo's tag set wholesale; an empty list clears
// all tags.
type PhotoTagRequest struct {
	CattleIDs []uuid.UUID `json:"cattle_ids"`
}

type PhotoListFilter struct {
	CaptureDate    *time.Time
	CaptureDateGte *time.Time
	CaptureDateLte *time.Time
	HasCattle      *bool
}
