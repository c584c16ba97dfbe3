package dto

import (
	"time"

	"github.com/google/uuid"
)

// CattleRequest is the write shape for create and full update. Dates are
// YYYY-MM-DD strings; sire/dam are ids of existing animals.
type CattleRequest struct {
	TagNumber  string     `json:"tag_number" validate:"required,max=50"`
	Name       string     `json:"name" validate:"max=100"`
	Sex        string     `json:"sex" validate:"required"`
	DOB        *string    `json:"dob"`
	Color      string     `json:"color" validate:"max=50"`
	Breed      string     `json:"breed" validate:"max=50"`
	HornStatus string     `json:"horn_status" validate:"max=50"`
	Status     string     `json:"status"`
	Sire       *uuid.UUID `json:"sire"`
	Dam        *uuid.UUID `json:"dam"`
}

// CattleUpdateRequest is the partial-update shape: nil fields are untouched.
type CattleUpdateRequest struct {
	TagNumber  *string    `json:"tag_number" validate:"omitempty,max=50"`
	Name       *string    `json:"name" validate:"omitempty,max=100"`
	Sex        *string    `json:"sex"`
	DOB        *string    `json:"dob"`
	Color      *string    `json:"color" validate:"omitempty,max=50"`
	Breed      *string    `json:"breed" validate:"omitempty,max=50"`
	HornStatus *string    `json:"horn_status" validate:"omitempty,max=50"`
	Status     *string    `json:"status"`
	Sire       *uuid.UUID `json:"sire"`
	Dam        *uuid.UUID `json:"dam"`
}

// CattleResponse is the record shape used by list/create/update endpoints.
type CattleResponse struct {
	ID         uuid.UUID  `json:"id"`
	TagNumber  string     `json:"tag_number"`
	Name       string     `json:"name"`
	Sex        string     `json:"sex"`
	DOB        *string    `json:"dob"`
	Color      string     `json:"color"`
	Breed      string     `json:"breed"`
	HornStatus string     `json:"horn_status"`
	Status     string     `json:"status"`
	Sire       *uuid.UUID `json:"sire"`
	SireTag    *string    `json:"sire_tag"`
	Dam        *uuid.UUID `json:"dam"`
	DamTag     *string    `json:"dam_tag"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CattleListFilter carries the list endpoint's query parameters.
type CattleListFilter struct {
	Sex    string
	Status string
	Color  string
	DOBGte *time.Time
	DOBLte *time.Time
	Search string
}
