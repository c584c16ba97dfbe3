package models

import (
	"time"

	"github.com/google/uuid"
)

// WeightLog is one weight sample for one animal. An animal has at most one
// sample per calendar date.
type WeightLog struct {
	ID         uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CattleID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_weight_cattle_date"`
	MeasuredAt time.Time `gorm:"type:date;not null;uniqueIndex:idx_weight_cattle_date"`
	WeightKg   float64   `gorm:"type:numeric(5,1);not null"`
	Method     string    `gorm:"size:24"`

	Cattle Cattle `gorm:"foreignKey:CattleID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

func (WeightLog) TableName() string {
	return "weight_logs"
}
