package dto

import (
	"time"

	"github.com/google/uuid"
)

// CattleBasicView is the normalized external representation used for nested
// family members: coded sex, uppercased horn status, derived age.
type CattleBasicView struct {
	ID          uuid.UUID `json:"id"`
	EarTag      string    `json:"ear_tag"`
	Name        string    `json:"name"`
	Sex         string    `json:"sex"`
	DateOfBirth *string   `json:"date_of_birth"`
	Color       string    `json:"color"`
	Breed       string    `json:"breed"`
	HornStatus  string    `json:"horn_status"`
	AgeInMonths int       `json:"age_in_months"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CattleDetailView extends the basic view with status, parent links and the
// latest weight sample. Used for the detail endpoint and lineage "current".
type CattleDetailView struct {
	ID            uuid.UUID        `json:"id"`
	EarTag        string           `json:"ear_tag"`
	Name          string           `json:"name"`
	Sex           string           `json:"sex"`
	DateOfBirth   *string          `json:"date_of_birth"`
	Color         string           `json:"color"`
	Breed         string           `json:"breed"`
	HornStatus    string           `json:"horn_status"`
	Status        string           `json:"status"`
	Father        *uuid.UUID       `json:"father"`
	FatherDetails *CattleBasicView `json:"father_details"`
	Mother        *uuid.UUID       `json:"mother"`
	MotherDetails *CattleBasicView `json:"mother_details"`
	LatestWeight  *float64         `json:"latest_weight"`
	AgeInMonths   int              `json:"age_in_months"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type LineageParents struct {
	Father *CattleBasicView `json:"father"`
	Mother *CattleBasicView `json:"mother"`
}

type LineageGrandparents struct {
	PaternalGrandfather *CattleBasicView `json:"paternal_grandfather"`
	PaternalGrandmother *CattleBasicView `json:"paternal_grandmother"`
	MaternalGrandfather *CattleBasicView `json:"maternal_grandfather"`
	MaternalGrandmother *CattleBasicView `json:"maternal_grandmother"`
}

// LineageResponse is the resolved family tree for one animal.
type LineageResponse struct {
	Current      *CattleDetailView   `json:"current"`
	Parents      LineageParents      `json:"parents"`
	Grandparents LineageGrandparents `json:"grandparents"`
	Siblings     []CattleBasicView   `json:"siblings"`
	Offspring    []CattleBasicView   `json:"offspring"`
}
