package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/models"
)

func TestSexCode(t *testing.T) {
	cases := []struct {
		sex  models.CattleSex
		want string
	}{
		{models.SexCow, "F"},
		{models.SexHeifer, "F"},
		{models.SexBull, "M"},
		{models.SexSteer, "M"},
		{models.SexCalf, "M"},
		{models.CattleSex("unknown"), "M"},
	}
	for _, tc := range cases {
		if got := SexCode(tc.sex); got != tc.want {
			t.Errorf("SexCode(%s) = %s, want %s", tc.sex, got, tc.want)
		}
	}
}

func TestAgeInMonths(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name string
		dob  time.Time
		now  time.Time
		want int
	}{
		{"exact months", date(2023, time.January, 1), date(2023, time.April, 1), 3},
		{"day not yet reached borrows one", date(2023, time.January, 15), date(2023, time.April, 14), 2},
		{"day reached", date(2023, time.January, 15), date(2023, time.April, 15), 3},
		{"across year boundary", date(2022, time.November, 10), date(2023, time.February, 10), 3},
		{"same day", date(2023, time.June, 1), date(2023, time.June, 1), 0},
		{"future dob clamps to zero", date(2025, time.January, 1), date(2023, time.April, 1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dob := tc.dob
			if got := AgeInMonths(&dob, tc.now); got != tc.want {
				t.Errorf("AgeInMonths(%s, %s) = %d, want %d",
					dob.Format(dateLayout), tc.now.Format(dateLayout), got, tc.want)
			}
		})
	}

	if got := AgeInMonths(nil, date(2023, time.April, 1)); got != 0 {
		t.Errorf("AgeInMonths(nil) = %d, want 0", got)
	}
}

func TestCattleToDetailView(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	dob := time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)
	sireID := uuid.New()

	c := &models.Cattle{
		ID:         uuid.New(),
		TagNumber:  "T001",
		Name:       "Bella",
		Sex:        models.SexCow,
		DOB:        &dob,
		HornStatus: "polled",
		Status:     models.StatusActive,
		SireID:     &sireID,
		Sire:       &models.Cattle{ID: sireID, TagNumber: "S001", Sex: models.SexBull},
	}
	latest := &models.WeightLog{WeightKg: 412.5}

	view := CattleToDetailView(c, latest, now)

	if view.Sex != "F" {
		t.Errorf("sex = %s, want F", view.Sex)
	}
	if view.HornStatus != "POLLED" {
		t.Errorf("horn status = %s, want POLLED", view.HornStatus)
	}
	if view.DateOfBirth == nil || *view.DateOfBirth != "2023-01-10" {
		t.Errorf("dob = %v", view.DateOfBirth)
	}
	if view.AgeInMonths != 17 {
		t.Errorf("age = %d, want 17", view.AgeInMonths)
	}
	if view.LatestWeight == nil || *view.LatestWeight != 412.5 {
		t.Errorf("latest weight = %v", view.LatestWeight)
	}
	if view.FatherDetails == nil || view.FatherDetails.EarTag != "S001" {
		t.Errorf("father details = %+v", view.FatherDetails)
	}
	if view.MotherDetails != nil {
		t.Errorf("mother details should be nil, got %+v", view.MotherDetails)
	}

	// No weight history yet.
	bare := CattleToDetailView(c, nil, now)
	if bare.LatestWeight != nil {
		t.Errorf("latest weight without samples = %v", bare.LatestWeight)
	}
}

func TestPhotoToResponseURLs(t *testing.T) {
	userID := uuid.New()
	p := &models.Photo{
		ID:           uuid.New(),
		FilePath:     "2024/06/abc123/original_barn.jpg",
		UploadedAt:   time.Now(),
		UploadedByID: userID,
		UploadedBy:   models.User{ID: userID, Username: "farmer"},
	}

	resp := PhotoToResponse(p, "http://localhost:3000/")

	if resp.OriginalURL != "http://localhost:3000/media/2024/06/abc123/original_barn.jpg" {
		t.Errorf("original url = %s", resp.OriginalURL)
	}
	if resp.DisplayURL != "http://localhost:3000/media/2024/06/abc123/display_1280.jpg" {
		t.Errorf("display url = %s", resp.DisplayURL)
	}
	if resp.ThumbURL != "http://localhost:3000/media/2024/06/abc123/thumb_300.jpg" {
		t.Errorf("thumb url = %s", resp.ThumbURL)
	}
	if resp.UploadedByUsername != "farmer" {
		t.Errorf("uploaded by = %s", resp.UploadedByUsername)
	}
	if resp.Exif == nil || resp.TaggedCattle == nil {
		t.Error("exif and tagged_cattle must be non-nil for JSON shape")
	}
}
