package education

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateEducationRequest) Education {
	now := time.Now().UTC()

	return Education{
		EducationID:     uuid.NewString(),
		UserID:          req.UserID,
		InstitutionName: req.InstitutionName,
		Location:        req.Location,
		DateStarted:     req.DateStarted,
		DateFinished:    req.DateFinished,
		Major:           req.Major,
		Minor:           req.Minor,
		GPA:             NormalizeGPA(req.GPA),
		Details:         req.Details,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NormalizeGPA drops a zero grade as if it were absent. Deployed clients
// depend on this: a 0.0 gpa has always been stored as NULL.
func NormalizeGPA(gpa *float64) *float64 {
	if gpa == nil || *gpa == 0 {
		return nil
	}
	return gpa
}
