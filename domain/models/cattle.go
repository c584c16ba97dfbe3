package models

import (
	"time"

	"github.com/google/uuid"
)

// CattleSex is the stored sex/role of an animal. The external API also uses a
// coded two-value form (M/F) derived from this.
type CattleSex string

const (
	SexCow    CattleSex = "cow"
	SexBull   CattleSex = "bull"
	SexSteer  CattleSex = "steer"
	SexHeifer CattleSex = "heifer"
	SexCalf   CattleSex = "calf"
)

type CattleStatus string

const (
	StatusActive   CattleStatus = "active"
	StatusArchived CattleStatus = "archived"
)

var ValidSexes = []CattleSex{SexCow, SexBull, SexSteer, SexHeifer, SexCalf}

var ValidStatuses = []CattleStatus{StatusActive, StatusArchived}

// SireSexes can father offspring; DamSexes can calve.
var (
	SireSexes = []CattleSex{SexBull, SexSteer}
	DamSexes  = []CattleSex{SexCow, SexHeifer}
)

func (s CattleSex) Valid() bool {
	for _, v := range ValidSexes {
		if s == v {
			return true
		}
	}
	return false
}

func (s CattleSex) CanSire() bool {
	return s == SexBull || s == SexSteer
}

func (s CattleSex) CanCalve() bool {
	return s == SexCow || s == SexHeifer
}

func (s CattleStatus) Valid() bool {
	return s == StatusActive || s == StatusArchived
}

type Cattle struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TagNumber string    `gorm:"uniqueIndex;size:50;not null"`
	Name      string    `gorm:"size:100"`

	Sex CattleSex  `gorm:"size:10;not null"`
	DOB *time.Time `gorm:"type:date"`

	Color      string `gorm:"size:50"`
	Breed      string `gorm:"size:50"`
	HornStatus string `gorm:"size:50"`

	Status CattleStatus `gorm:"size:10;not null;default:'active';index"`

	SireID *uuid.UUID `gorm:"type:uuid;index"`
	Sire   *Cattle    `gorm:"foreignKey:SireID;constraint:OnDelete:SET NULL"`
	DamID  *uuid.UUID `gorm:"type:uuid;index"`
	Dam    *Cattle    `gorm:"foreignKey:DamID;constraint:OnDelete:SET NULL"`

	WeightLogs []WeightLog `gorm:"foreignKey:CattleID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cattle) TableName() string {
	return "cattle"
}
