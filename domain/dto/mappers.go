package dto

import (
	"path"
	"strings"
	"time"

	"cattle-tracker/domain/models"
)

const dateLayout = "2006-01-02"

// SexCode maps the stored sex to the two-value external code. Cows and
// heifers are "F"; everything else, including unrecognized values, is "M".
func SexCode(sex models.CattleSex) string {
	switch sex {
	case models.SexCow, models.SexHeifer:
		return "F"
	default:
		return "M"
	}
}

// AgeInMonths computes whole months between dob and now, borrowing one month
// when now's day-of-month has not yet reached dob's. Clamped at 0; 0 when dob
// is unknown.
func AgeInMonths(dob *time.Time, now time.Time) int {
	if dob == nil {
		return 0
	}
	months := (now.Year()-dob.Year())*12 + int(now.Month()) - int(dob.Month())
	if now.Day() < dob.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// CattleToBasicView builds the normalized nested representation of one
// animal.
func CattleToBasicView(c *models.Cattle, now time.Time) *CattleBasicView {
	if c == nil {
		return nil
	}
	return &CattleBasicView{
		ID:          c.ID,
		EarTag:      c.TagNumber,
		Name:        c.Name,
		Sex:         SexCode(c.Sex),
		DateOfBirth: formatDate(c.DOB),
		Color:       c.Color,
		Breed:       c.Breed,
		HornStatus:  strings.ToUpper(c.HornStatus),
		AgeInMonths: AgeInMonths(c.DOB, now),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CattleToDetailView builds the detail representation, including parent
// links and the latest weight sample (nil when the animal has none).
func CattleToDetailView(c *models.Cattle, latest *models.WeightLog, now time.Time) *CattleDetailView {
	if c == nil {
		return nil
	}
	view := &CattleDetailView{
		ID:          c.ID,
		EarTag:      c.TagNumber,
		Name:        c.Name,
		Sex:         SexCode(c.Sex),
		DateOfBirth: formatDate(c.DOB),
		Color:       c.Color,
		Breed:       c.Breed,
		HornStatus:  strings.ToUpper(c.HornStatus),
		Status:      string(c.Status),
		Father:      c.SireID,
		Mother:      c.DamID,
		AgeInMonths: AgeInMonths(c.DOB, now),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Sire != nil {
		view.FatherDetails = CattleToBasicView(c.Sire, now)
	}
	if c.Dam != nil {
		view.MotherDetails = CattleToBasicView(c.Dam, now)
	}
	if latest != nil {
		w := latest.WeightKg
		view.LatestWeight = &w
	}
	return view
}

// CattleToResponse builds the record shape with raw field names; sire/dam
// tags are filled from preloaded parents.
func CattleToResponse(c *models.Cattle) *CattleResponse {
	if c == nil {
		return nil
	}
	resp := &CattleResponse{
		ID:         c.ID,
		TagNumber:  c.TagNumber,
		Name:       c.Name,
		Sex:        string(c.Sex),
		DOB:        formatDate(c.DOB),
		Color:      c.Color,
		Breed:      c.Breed,
		HornStatus: c.HornStatus,
		Status:     string(c.Status),
		Sire:       c.SireID,
		Dam:        c.DamID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.Sire != nil {
		tag := c.Sire.TagNumber
		resp.SireTag = &tag
	}
	if c.Dam != nil {
		tag := c.Dam.TagNumber
		resp.DamTag = &tag
	}
	return resp
}

func WeightLogToResponse(log *models.WeightLog) *WeightLogResponse {
	if log == nil {
		return nil
	}
	return &WeightLogResponse{
		ID:         log.ID,
		Cattle:     log.CattleID,
		MeasuredAt: log.MeasuredAt.Format(dateLayout),
		WeightKg:   log.WeightKg,
		Method:     log.Method,
	}
}

// PhotoToResponse builds the photo detail shape. Derivative URLs are derived
// from the original path: the directory is shared, only the file name
// differs.
func PhotoToResponse(p *models.Photo, baseURL string) *PhotoResponse {
	if p == nil {
		return nil
	}
	dir := path.Dir(p.FilePath)
	resp := &PhotoResponse{
		ID:           p.ID,
		OriginalURL:  mediaURL(baseURL, p.FilePath),
		DisplayURL:   mediaURL(baseURL, path.Join(dir, "display_1280.jpg")),
		ThumbURL:     mediaURL(baseURL, path.Join(dir, "thumb_300.jpg")),
		CaptureTime:  p.CaptureTime,
		Exif:         p.Exif,
		UploadedAt:   p.UploadedAt,
		UploadedBy:   p.UploadedByID,
		TaggedCattle: []TaggedCattle{},
	}
	if resp.Exif == nil {
		resp.Exif = map[string]string{}
	}
	if p.UploadedBy.Username != "" {
		resp.UploadedByUsername = p.UploadedBy.Username
	}
	for _, tag := range p.Tags {
		resp.TaggedCattle = append(resp.TaggedCattle, TaggedCattle{
			ID:        tag.CattleID,
			TagNumber: tag.Cattle.TagNumber,
			Name:      tag.Cattle.Name,
		})
	}
	return resp
}

func mediaURL(baseURL, rel string) string {
	return strings.TrimSuffix(baseURL, "/") + "/media/" + rel
}

func UserToResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
