package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExifMap stores extracted image metadata as a jsonb column.
type ExifMap map[string]string

func (m ExifMap) Value() (driver.Value, error) {
	if m == nil {
		m = ExifMap{}
	}
	return json.Marshal(m)
}

func (m *ExifMap) Scan(value interface{}) error {
	if value == nil {
		*m = ExifMap{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported exif column type %T", value)
	}
	return json.Unmarshal(raw, m)
}

type Photo struct {
	ID uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`

	// FilePath is the original file, relative to the media root. Display and
	// thumbnail derivatives live next to it with fixed names.
	FilePath    string     `gorm:"not null"`
	CaptureTime *time.Time `gorm:"index"`
	Exif        ExifMap    `gorm:"type:jsonb;default:'{}'"`

	UploadedAt   time.Time `gorm:"autoCreateTime"`
	UploadedByID uuid.UUID `gorm:"type:uuid;not null;index"`
	UploadedBy   User      `gorm:"foreignKey:UploadedByID"`

	Tags []PhotoCattle `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE"`
}

func (Photo) TableName() string {
	return "photos"
}

// PhotoCattle is the join row tagging one animal in one photo.
type PhotoCattle struct {
	ID       uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PhotoID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_photo_cattle"`
	CattleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_photo_cattle;index"`

	Photo  Photo  `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE"`
	Cattle Cattle `gorm:"foreignKey:CattleID;constraint:OnDelete:CASCADE"`
}

func (PhotoCattle) TableName() string {
	return "photo_cattle"
}
